// Package profile carries the per-platform fallback tables: industry-typical
// posting windows used when no history exists, and curated popular hashtags
// used for suggestions. Both are plain maps so deployments can override them
// from configuration without touching aggregation logic.
package profile

import (
	"time"

	"postpulse/internal/model"
)

// SlotProfile is one hard-coded posting window.
type SlotProfile struct {
	Day           time.Weekday `yaml:"day"`
	Hour          int          `yaml:"hour"`
	AvgEngagement float64      `yaml:"avgEngagement"`
	Confidence    float64      `yaml:"confidence"`
}

// DefaultProfile bundles a platform's recommended window with alternatives.
type DefaultProfile struct {
	Recommended  SlotProfile   `yaml:"recommended"`
	Alternatives []SlotProfile `yaml:"alternatives"`
}

// Table maps platforms to their fallback posting profiles.
type Table map[model.PlatformID]DefaultProfile

// PopularTags maps platforms to their curated popular hashtag lists.
type PopularTags map[model.PlatformID][]string

// fallbackPlatform backs every unknown-platform lookup. Deliberate policy:
// unknown platforms get the Instagram-style defaults, never an error.
const fallbackPlatform = model.PlatformInstagram

// DefaultTable returns the built-in posting windows, one entry per
// supported platform.
func DefaultTable() Table {
	return Table{
		model.PlatformInstagram: {
			Recommended: SlotProfile{Day: time.Tuesday, Hour: 18, AvgEngagement: 4.2, Confidence: 0.7},
			Alternatives: []SlotProfile{
				{Day: time.Thursday, Hour: 17, AvgEngagement: 3.9, Confidence: 0.7},
				{Day: time.Sunday, Hour: 11, AvgEngagement: 3.6, Confidence: 0.6},
			},
		},
		model.PlatformFacebook: {
			Recommended: SlotProfile{Day: time.Wednesday, Hour: 13, AvgEngagement: 3.1, Confidence: 0.7},
			Alternatives: []SlotProfile{
				{Day: time.Friday, Hour: 15, AvgEngagement: 2.8, Confidence: 0.6},
				{Day: time.Saturday, Hour: 12, AvgEngagement: 2.6, Confidence: 0.6},
			},
		},
		model.PlatformTwitter: {
			Recommended: SlotProfile{Day: time.Wednesday, Hour: 9, AvgEngagement: 2.9, Confidence: 0.7},
			Alternatives: []SlotProfile{
				{Day: time.Tuesday, Hour: 12, AvgEngagement: 2.7, Confidence: 0.6},
				{Day: time.Thursday, Hour: 18, AvgEngagement: 2.5, Confidence: 0.6},
			},
		},
		model.PlatformLinkedIn: {
			Recommended: SlotProfile{Day: time.Tuesday, Hour: 10, AvgEngagement: 3.4, Confidence: 0.7},
			Alternatives: []SlotProfile{
				{Day: time.Wednesday, Hour: 9, AvgEngagement: 3.2, Confidence: 0.7},
				{Day: time.Thursday, Hour: 14, AvgEngagement: 2.9, Confidence: 0.6},
			},
		},
		model.PlatformTikTok: {
			Recommended: SlotProfile{Day: time.Thursday, Hour: 19, AvgEngagement: 5.1, Confidence: 0.7},
			Alternatives: []SlotProfile{
				{Day: time.Friday, Hour: 21, AvgEngagement: 4.8, Confidence: 0.7},
				{Day: time.Sunday, Hour: 16, AvgEngagement: 4.4, Confidence: 0.6},
			},
		},
		model.PlatformYouTube: {
			Recommended: SlotProfile{Day: time.Saturday, Hour: 15, AvgEngagement: 3.8, Confidence: 0.7},
			Alternatives: []SlotProfile{
				{Day: time.Sunday, Hour: 14, AvgEngagement: 3.5, Confidence: 0.7},
				{Day: time.Friday, Hour: 17, AvgEngagement: 3.2, Confidence: 0.6},
			},
		},
	}
}

// DefaultPopularTags returns the built-in curated hashtag lists.
func DefaultPopularTags() PopularTags {
	return PopularTags{
		model.PlatformInstagram: {"#instagood", "#photooftheday", "#love", "#reels", "#explore"},
		model.PlatformFacebook:  {"#community", "#local", "#event", "#share", "#family"},
		model.PlatformTwitter:   {"#news", "#tech", "#trending", "#thread", "#opinion"},
		model.PlatformLinkedIn:  {"#career", "#leadership", "#business", "#innovation", "#networking"},
		model.PlatformTikTok:    {"#fyp", "#foryou", "#viral", "#trend", "#duet"},
		model.PlatformYouTube:   {"#shorts", "#tutorial", "#vlog", "#review", "#subscribe"},
	}
}

// For returns the platform's profile, falling back to the Instagram entry
// for unknown platforms.
func (t Table) For(platform model.PlatformID) DefaultProfile {
	if p, ok := t[platform]; ok {
		return p
	}
	return t[fallbackPlatform]
}

// For returns the platform's popular tags, falling back to the Instagram
// list for unknown platforms.
func (p PopularTags) For(platform model.PlatformID) []string {
	if tags, ok := p[platform]; ok {
		return tags
	}
	return p[fallbackPlatform]
}

// Slot converts a profile entry into the engine's slot type.
func (s SlotProfile) Slot() model.TimeSlot {
	return model.TimeSlot{
		DayOfWeek:     s.Day,
		Hour:          s.Hour,
		PostCount:     0,
		AvgEngagement: s.AvgEngagement,
		Confidence:    s.Confidence,
	}
}

// Slots converts the profile's recommended window and alternatives.
func (p DefaultProfile) Slots() (model.TimeSlot, []model.TimeSlot) {
	alts := make([]model.TimeSlot, 0, len(p.Alternatives))
	for _, a := range p.Alternatives {
		alts = append(alts, a.Slot())
	}
	return p.Recommended.Slot(), alts
}
