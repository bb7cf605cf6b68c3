package postdb

import (
	"context"
	"reflect"
	"testing"
	"time"

	"postpulse/internal/model"
)

func TestPostRoundTrip(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()

	p := model.Post{
		ID:            "p1",
		Content:       "Launch day #go #release",
		ScheduledTime: time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC),
		Platforms:     []model.PlatformID{model.PlatformInstagram, model.PlatformTwitter},
		Likes:         100, Comments: 10, Shares: 5, Views: 2000, Reach: 3000,
	}
	if err := db.PutPost(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, err := db.LoadPosts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], p) {
		t.Fatalf("loaded %+v, want %+v", got, p)
	}

	// Upsert replaces in place.
	p.Likes = 150
	if err := db.PutPost(ctx, p); err != nil {
		t.Fatal(err)
	}
	n, err := db.CountPosts(ctx)
	if err != nil || n != 1 {
		t.Fatalf("count = %d (%v), want 1", n, err)
	}
	got, _ = db.LoadPosts(ctx)
	if got[0].Likes != 150 {
		t.Fatalf("likes = %d after upsert", got[0].Likes)
	}
}

func TestLoadPostsOrderedBySchedule(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()

	base := time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC)
	for _, p := range []model.Post{
		{ID: "late", Content: "b", ScheduledTime: base.Add(time.Hour), Platforms: []model.PlatformID{model.PlatformInstagram}},
		{ID: "early", Content: "a", ScheduledTime: base, Platforms: []model.PlatformID{model.PlatformInstagram}},
	} {
		if err := db.PutPost(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	got, err := db.LoadPosts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("order = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestLoadPostsNormalizesToUTC(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()

	// 18:00 at +05:00 is 13:00 UTC; the loaded wall clock follows UTC.
	offset := time.FixedZone("plus5", 5*3600)
	p := model.Post{
		ID:            "tz",
		Content:       "offset #demo",
		ScheduledTime: time.Date(2026, 2, 10, 18, 0, 0, 0, offset),
		Platforms:     []model.PlatformID{model.PlatformInstagram},
	}
	if err := db.PutPost(ctx, p); err != nil {
		t.Fatal(err)
	}
	got, err := db.LoadPosts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	ts := got[0].ScheduledTime
	if ts.Location() != time.UTC {
		t.Fatalf("location = %v, want UTC", ts.Location())
	}
	if ts.Hour() != 13 {
		t.Fatalf("hour = %d, want 13", ts.Hour())
	}
	if !ts.Equal(p.ScheduledTime) {
		t.Fatalf("instant changed: %v vs %v", ts, p.ScheduledTime)
	}
}

func TestHashtagSetRoundTrip(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	ctx := context.Background()

	s := model.HashtagSet{
		ID:          "s1",
		Name:        "Tech",
		Description: "Technology posts",
		Hashtags:    []string{"#go", "#web"},
		Category:    "tech",
	}
	if err := db.PutHashtagSet(ctx, s); err != nil {
		t.Fatal(err)
	}
	got, err := db.ListHashtagSets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], s) {
		t.Fatalf("loaded %+v, want %+v", got, s)
	}
}
