// Package jobs keeps a periodically refreshed snapshot of the analytics
// results. The engine itself is stateless; any caching of its output lives
// here, in the calling layer.
package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"postpulse/internal/analytics"
	"postpulse/internal/metrics"
	"postpulse/internal/model"
	"postpulse/internal/store/postdb"
)

// Summary is one cached analytics run over the stored post history.
type Summary struct {
	GeneratedAt    time.Time               `json:"generatedAt"`
	Platform       model.PlatformID        `json:"platform"`
	TotalPosts     int                     `json:"totalPosts"`
	Recommendation model.Recommendation    `json:"recommendation"`
	Hashtags       analytics.HashtagReport `json:"hashtags"`
	Sets           []model.HashtagSet      `json:"sets"`
}

// SnapshotService recomputes and caches the summary on a cron schedule.
type SnapshotService struct {
	db       *postdb.DB
	engine   *analytics.Engine
	platform model.PlatformID
	cron     *cron.Cron

	mu      sync.RWMutex
	current *Summary
}

// NewSnapshotService builds a refresher for the given platform's summary.
func NewSnapshotService(db *postdb.DB, engine *analytics.Engine, platform model.PlatformID) *SnapshotService {
	return &SnapshotService{
		db:       db,
		engine:   engine,
		platform: platform,
		cron:     cron.New(cron.WithSeconds()),
	}
}

// RefreshOnce loads the post history, reruns the analysis, and swaps the
// cached summary.
func (s *SnapshotService) RefreshOnce(ctx context.Context, now time.Time) error {
	start := time.Now()
	posts, err := s.db.LoadPosts(ctx)
	if err != nil {
		return err
	}
	sets, err := s.db.ListHashtagSets(ctx)
	if err != nil {
		return err
	}

	report := s.engine.AnalyzeHashtags(posts, now)
	scored := make([]model.HashtagSet, 0, len(sets))
	for _, set := range sets {
		scored = append(scored, s.engine.ScoreHashtagSet(set, report.All))
	}

	summary := &Summary{
		GeneratedAt:    now,
		Platform:       s.platform,
		TotalPosts:     len(posts),
		Recommendation: s.engine.AnalyzeTimeSlots(posts, s.platform, now),
		Hashtags:       report,
		Sets:           scored,
	}

	s.mu.Lock()
	s.current = summary
	s.mu.Unlock()

	metrics.SnapshotRefreshes.Inc()
	metrics.ObserveAnalysis("snapshot", start)
	logrus.WithFields(logrus.Fields{
		"posts":    len(posts),
		"sets":     len(sets),
		"platform": s.platform,
	}).Info("snapshot refreshed")
	return nil
}

// Current returns the latest summary, if one has been computed.
func (s *SnapshotService) Current() (Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Summary{}, false
	}
	return *s.current, true
}

// Start refreshes immediately, then keeps refreshing on the cron schedule
// until Stop is called.
func (s *SnapshotService) Start(ctx context.Context, schedule string) error {
	if err := s.RefreshOnce(ctx, time.Now().UTC()); err != nil {
		logrus.WithError(err).Error("initial snapshot refresh failed")
	}
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.RefreshOnce(ctx, time.Now().UTC()); err != nil {
			logrus.WithError(err).Error("snapshot refresh failed")
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	logrus.WithField("schedule", schedule).Info("snapshot scheduler started")
	return nil
}

// Stop halts the scheduler.
func (s *SnapshotService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
