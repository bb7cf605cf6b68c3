package hashtag

import (
	"sort"
	"time"

	"postpulse/internal/model"
)

// trendWindow and the up/down factors reproduce the dashboard's historical
// heuristic; they are compatibility constants, not tuned values.
const (
	trendWindow     = 30 * 24 * time.Hour
	trendUpFactor   = 1.2
	trendDownFactor = 0.8
)

const maxRelated = 5

type tagAccum struct {
	tag          string
	posts        []model.Post
	platforms    []model.PlatformID
	timestamps   []time.Time
	related      map[string]int
	relatedOrder []string
	lastUsed     time.Time
}

// Aggregate computes per-hashtag statistics over the post history. Each
// post contributes under its first target platform only. Output is sorted
// by average engagement, descending, ties keeping first-seen order.
func Aggregate(posts []model.Post, now time.Time) []model.HashtagStat {
	byTag := make(map[string]*tagAccum)
	var order []string

	for _, p := range posts {
		tags := Extract(p.Content)
		for _, tag := range tags {
			acc, ok := byTag[tag]
			if !ok {
				acc = &tagAccum{tag: tag, related: make(map[string]int)}
				byTag[tag] = acc
				order = append(order, tag)
			}
			acc.posts = append(acc.posts, p)
			acc.timestamps = append(acc.timestamps, p.ScheduledTime)
			if p.ScheduledTime.After(acc.lastUsed) {
				acc.lastUsed = p.ScheduledTime
			}
			if platform := p.FirstPlatform(); platform != "" && !containsPlatform(acc.platforms, platform) {
				acc.platforms = append(acc.platforms, platform)
			}
			for _, other := range tags {
				if other == tag {
					continue
				}
				if _, seen := acc.related[other]; !seen {
					acc.relatedOrder = append(acc.relatedOrder, other)
				}
				acc.related[other]++
			}
		}
	}

	stats := make([]model.HashtagStat, 0, len(order))
	for _, tag := range order {
		acc := byTag[tag]
		avg := model.MeanEngagement(acc.posts)
		stats = append(stats, model.HashtagStat{
			Tag:             tag,
			UsageCount:      len(acc.posts),
			AvgEngagement:   avg,
			AvgReach:        meanReach(acc.posts),
			Trend:           classifyTrend(acc.timestamps, now),
			Performance:     classifyPerformance(avg),
			Platforms:       acc.platforms,
			RelatedHashtags: topRelated(acc.related, acc.relatedOrder),
			LastUsed:        acc.lastUsed,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgEngagement > stats[j].AvgEngagement
	})
	return stats
}

// classifyTrend compares usage counts in the trailing 30-day window
// against everything before it. A previous count of 0 resolves through
// the factor comparison unchanged: any recent usage reads as up.
func classifyTrend(timestamps []time.Time, now time.Time) model.Trend {
	cutoff := now.Add(-trendWindow)
	recent, previous := 0, 0
	for _, ts := range timestamps {
		if ts.Before(cutoff) {
			previous++
		} else {
			recent++
		}
	}
	switch {
	case float64(recent) > float64(previous)*trendUpFactor:
		return model.TrendUp
	case float64(recent) < float64(previous)*trendDownFactor:
		return model.TrendDown
	default:
		return model.TrendStable
	}
}

func classifyPerformance(avgEngagement float64) model.Performance {
	switch {
	case avgEngagement > 5:
		return model.PerformanceHigh
	case avgEngagement > 2:
		return model.PerformanceMedium
	default:
		return model.PerformanceLow
	}
}

// topRelated ranks co-occurring tags by count, ties broken by first-seen
// order, keeping at most five.
func topRelated(counts map[string]int, order []string) []string {
	ranked := make([]string, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > maxRelated {
		ranked = ranked[:maxRelated]
	}
	return ranked
}

func meanReach(posts []model.Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range posts {
		sum += float64(p.Reach)
	}
	return sum / float64(len(posts))
}

func containsPlatform(ids []model.PlatformID, id model.PlatformID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
