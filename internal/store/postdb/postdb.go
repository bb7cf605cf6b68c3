// Package postdb persists the dashboard's post history and curated hashtag
// sets in SQLite. The analytics engine never touches it; the service layer
// loads records here and hands them to the engine as plain values.
package postdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"postpulse/internal/model"
)

// DB wraps the SQLite database backing posts and hashtag sets.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	// scheduled_ts holds the Unix timestamp and is rehydrated in UTC, so
	// posts submitted with another offset land in UTC day/hour buckets.
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS posts (
	  id TEXT PRIMARY KEY,
	  content TEXT NOT NULL,
	  scheduled_ts INTEGER NOT NULL,
	  platforms TEXT NOT NULL,
	  likes INTEGER NOT NULL DEFAULT 0,
	  comments INTEGER NOT NULL DEFAULT 0,
	  shares INTEGER NOT NULL DEFAULT 0,
	  views INTEGER NOT NULL DEFAULT 0,
	  reach INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_posts_ts ON posts(scheduled_ts);
	CREATE TABLE IF NOT EXISTS hashtag_sets (
	  id TEXT PRIMARY KEY,
	  name TEXT NOT NULL,
	  description TEXT,
	  hashtags TEXT NOT NULL,
	  category TEXT
	);
	`)
	return err
}

// PutPost inserts or replaces a post record.
func (d *DB) PutPost(ctx context.Context, p model.Post) error {
	platforms, err := json.Marshal(p.Platforms)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO posts(id, content, scheduled_ts, platforms, likes, comments, shares, views, reach)
		 VALUES(?,?,?,?,?,?,?,?,?)
		 ON CONFLICT(id) DO UPDATE SET
		   content=excluded.content, scheduled_ts=excluded.scheduled_ts,
		   platforms=excluded.platforms, likes=excluded.likes,
		   comments=excluded.comments, shares=excluded.shares,
		   views=excluded.views, reach=excluded.reach`,
		p.ID, p.Content, p.ScheduledTime.Unix(), string(platforms),
		p.Likes, p.Comments, p.Shares, p.Views, p.Reach)
	return err
}

// LoadPosts returns every post ordered by schedule time ascending.
func (d *DB) LoadPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, content, scheduled_ts, platforms, likes, comments, shares, views, reach
		 FROM posts ORDER BY scheduled_ts, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Post
	for rows.Next() {
		var p model.Post
		var ts int64
		var platforms string
		if err := rows.Scan(&p.ID, &p.Content, &ts, &platforms, &p.Likes, &p.Comments, &p.Shares, &p.Views, &p.Reach); err != nil {
			return nil, err
		}
		p.ScheduledTime = time.Unix(ts, 0).UTC()
		if err := json.Unmarshal([]byte(platforms), &p.Platforms); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountPosts returns the number of stored posts.
func (d *DB) CountPosts(ctx context.Context) (int, error) {
	row := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`)
	var n int
	err := row.Scan(&n)
	return n, err
}

// PutHashtagSet inserts or replaces a curated hashtag set. The computed
// fields (avgEngagement, totalUsage) are derived on read and not stored.
func (d *DB) PutHashtagSet(ctx context.Context, s model.HashtagSet) error {
	tags, err := json.Marshal(s.Hashtags)
	if err != nil {
		return err
	}
	_, err = d.sql.ExecContext(ctx,
		`INSERT INTO hashtag_sets(id, name, description, hashtags, category)
		 VALUES(?,?,?,?,?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, description=excluded.description,
		   hashtags=excluded.hashtags, category=excluded.category`,
		s.ID, s.Name, s.Description, string(tags), s.Category)
	return err
}

// ListHashtagSets returns every curated set ordered by name.
func (d *DB) ListHashtagSets(ctx context.Context) ([]model.HashtagSet, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, name, COALESCE(description, ''), hashtags, COALESCE(category, '') FROM hashtag_sets ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.HashtagSet
	for rows.Next() {
		var s model.HashtagSet
		var tags string
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &tags, &s.Category); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &s.Hashtags); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
