// Package insight turns ranked time slots into recommendation objects with
// human-readable reasons and concrete future dates.
package insight

import (
	"fmt"
	"math"
	"time"

	"postpulse/internal/model"
	"postpulse/internal/timeslot"
)

// fewPostsThreshold switches the reason wording when history is thin.
// The 0/10 thresholds are fixed for behavioral compatibility.
const fewPostsThreshold = 10

// NextOccurrence finds the next instant matching day at hour:00 relative
// to now, in now's location. When today is the target day but the hour has
// already started, it rolls forward a full week, never same-day-past.
func NextOccurrence(day time.Weekday, hour int, now time.Time) time.Time {
	daysAhead := (int(day) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 && hour <= now.Hour() {
		daysAhead = 7
	}
	d := now.AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, now.Location())
}

// ImprovementPercent compares the recommended slot's engagement against
// the overall average, rounded to the nearest integer percent. A zero
// overall average reads as no improvement.
func ImprovementPercent(recommended, overall float64) int {
	if overall == 0 {
		return 0
	}
	return int(math.Round((recommended - overall) / overall * 100))
}

// Reason renders the justification string for a recommendation.
func Reason(slot model.TimeSlot, platform model.PlatformID, totalPosts, improvement int) string {
	day := slot.DayOfWeek.String()
	hour := fmt.Sprintf("%02d:00", slot.Hour)
	switch {
	case totalPosts == 0:
		return fmt.Sprintf("%s at %s is an optimal posting window for %s.", day, hour, platform)
	case totalPosts < fewPostsThreshold:
		return fmt.Sprintf("Based on %d posts, %s at %s is your strongest window on %s.", totalPosts, day, hour, platform)
	default:
		return fmt.Sprintf("Your posts on %s at %s generate %+d%% engagement on %s.", day, hour, improvement, platform)
	}
}

// Build assembles the final recommendation from a ranked result. overallAvg
// is the mean engagement ratio across the platform's posts and totalPosts
// their count; both are zero on the default-profile fallback path. now is
// injected so date derivation stays pure.
func Build(ranked timeslot.Ranked, platform model.PlatformID, totalPosts int, overallAvg float64, now time.Time) model.Recommendation {
	improvement := ImprovementPercent(ranked.Recommended.AvgEngagement, overallAvg)

	alts := make([]model.ScheduledSlot, 0, len(ranked.Alternatives))
	for _, s := range ranked.Alternatives {
		alts = append(alts, model.ScheduledSlot{
			TimeSlot: s,
			Date:     NextOccurrence(s.DayOfWeek, s.Hour, now),
		})
	}

	return model.Recommendation{
		Recommended: model.ScheduledSlot{
			TimeSlot: ranked.Recommended,
			Date:     NextOccurrence(ranked.Recommended.DayOfWeek, ranked.Recommended.Hour, now),
		},
		Alternatives: alts,
		Reason:       Reason(ranked.Recommended, platform, totalPosts, improvement),
		Confidence:   ranked.Recommended.Confidence,
		Insights: model.Insights{
			TotalPosts:         totalPosts,
			AvgEngagement:      overallAvg,
			ImprovementPercent: improvement,
		},
	}
}
