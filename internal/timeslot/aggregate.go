// Package timeslot buckets post history by day-of-week and hour and ranks
// the buckets by engagement.
package timeslot

import (
	"time"

	"postpulse/internal/model"
)

// confidenceCap is the sample count at which a slot is fully trusted.
const confidenceCap = 5

// Confidence maps a sample count onto [0,1]: min(count/5, 1).
func Confidence(postCount int) float64 {
	c := float64(postCount) / confidenceCap
	if c > 1 {
		return 1
	}
	return c
}

type slotKey struct {
	day  int
	hour int
}

// Aggregate groups the posts targeting platform by local wall-clock
// (day-of-week, hour) and computes per-slot engagement statistics. Slots
// come back in first-encounter order so identical input always yields an
// identical result; averages accumulate left to right over input order.
// An empty filtered list yields an empty slice and the caller falls back
// to the default profile.
func Aggregate(posts []model.Post, platform model.PlatformID) []model.TimeSlot {
	type accum struct {
		sum   float64
		count int
	}
	byKey := make(map[slotKey]*accum)
	var order []slotKey

	for _, p := range posts {
		if !p.TargetsPlatform(platform) {
			continue
		}
		key := slotKey{day: int(p.ScheduledTime.Weekday()), hour: p.ScheduledTime.Hour()}
		acc, ok := byKey[key]
		if !ok {
			acc = &accum{}
			byKey[key] = acc
			order = append(order, key)
		}
		acc.sum += model.EngagementRatio(p)
		acc.count++
	}

	slots := make([]model.TimeSlot, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		slots = append(slots, model.TimeSlot{
			DayOfWeek:     time.Weekday(key.day),
			Hour:          key.hour,
			PostCount:     acc.count,
			AvgEngagement: acc.sum / float64(acc.count),
			Confidence:    Confidence(acc.count),
		})
	}
	return slots
}

// FilterByPlatform returns the posts targeting platform, in input order.
func FilterByPlatform(posts []model.Post, platform model.PlatformID) []model.Post {
	var out []model.Post
	for _, p := range posts {
		if p.TargetsPlatform(platform) {
			out = append(out, p)
		}
	}
	return out
}
