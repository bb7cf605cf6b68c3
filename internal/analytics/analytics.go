// Package analytics is the engine's public surface: pure functions over an
// in-memory post collection. Nothing here persists state or reads the
// system clock; callers pass "now" explicitly and re-run the analysis when
// the collection changes.
package analytics

import (
	"time"

	"postpulse/internal/hashtag"
	"postpulse/internal/insight"
	"postpulse/internal/model"
	"postpulse/internal/profile"
	"postpulse/internal/suggest"
	"postpulse/internal/timeslot"
)

const topListLimit = 10

// HashtagReport bundles every hashtag-level analysis result.
type HashtagReport struct {
	All           []model.HashtagStat `json:"all"`
	TopPerformers []model.HashtagStat `json:"topPerformers"`
	Trending      []model.HashtagStat `json:"trending"`
	Combinations  []model.Combination `json:"combinations"`
}

// Engine evaluates post history against injectable platform tables. The
// zero-dependency construction via NewEngine uses the built-in defaults.
type Engine struct {
	profiles  profile.Table
	generator *suggest.Generator
}

// NewEngine builds an engine with the built-in platform tables.
func NewEngine() *Engine {
	return NewEngineWith(profile.DefaultTable(), profile.DefaultPopularTags())
}

// NewEngineWith builds an engine over custom platform tables, typically
// sourced from configuration.
func NewEngineWith(profiles profile.Table, popular profile.PopularTags) *Engine {
	return &Engine{
		profiles:  profiles,
		generator: suggest.NewGenerator(popular),
	}
}

// AnalyzeTimeSlots recommends a posting window for platform from the post
// history. With no history for the platform it falls back to the default
// profile, reporting zero posts and zero improvement.
func (e *Engine) AnalyzeTimeSlots(posts []model.Post, platform model.PlatformID, now time.Time) model.Recommendation {
	slots := timeslot.Aggregate(posts, platform)
	if len(slots) == 0 {
		rec, alts := e.profiles.For(platform).Slots()
		ranked := timeslot.Ranked{Recommended: rec, Alternatives: alts}
		return insight.Build(ranked, platform, 0, 0, now)
	}

	filtered := timeslot.FilterByPlatform(posts, platform)
	ranked := timeslot.Rank(slots)
	return insight.Build(ranked, platform, len(filtered), model.MeanEngagement(filtered), now)
}

// AnalyzeHashtags aggregates per-hashtag statistics and derives the
// top-performer, trending, and combination views.
func (e *Engine) AnalyzeHashtags(posts []model.Post, now time.Time) HashtagReport {
	all := hashtag.Aggregate(posts, now)

	top := all
	if len(top) > topListLimit {
		top = top[:topListLimit]
	}

	var trending []model.HashtagStat
	for _, s := range all {
		if s.Trend == model.TrendUp {
			trending = append(trending, s)
		}
		if len(trending) == topListLimit {
			break
		}
	}

	return HashtagReport{
		All:           all,
		TopPerformers: top,
		Trending:      trending,
		Combinations:  hashtag.Combinations(posts),
	}
}

// SuggestHashtags proposes hashtags for new content on platform, skipping
// tags already present.
func (e *Engine) SuggestHashtags(content string, platform model.PlatformID, existing []string) []model.Suggestion {
	return e.generator.Suggest(content, platform, existing)
}

// ScoreHashtagSet recomputes a curated bundle's average engagement and
// total usage against the current hashtag statistics.
func (e *Engine) ScoreHashtagSet(set model.HashtagSet, stats []model.HashtagStat) model.HashtagSet {
	byTag := make(map[string]model.HashtagStat, len(stats))
	for _, s := range stats {
		byTag[s.Tag] = s
	}

	sum := 0.0
	matched := 0
	total := 0
	for _, tag := range set.Hashtags {
		s, ok := byTag[tag]
		if !ok {
			continue
		}
		sum += s.AvgEngagement
		total += s.UsageCount
		matched++
	}

	scored := set
	scored.TotalUsage = total
	if matched > 0 {
		scored.AvgEngagement = sum / float64(matched)
	} else {
		scored.AvgEngagement = 0
	}
	return scored
}
