package model

import "time"

// PlatformID identifies a social platform a post can target.
type PlatformID string

const (
	PlatformInstagram PlatformID = "instagram"
	PlatformFacebook  PlatformID = "facebook"
	PlatformTwitter   PlatformID = "twitter"
	PlatformLinkedIn  PlatformID = "linkedin"
	PlatformTikTok    PlatformID = "tiktok"
	PlatformYouTube   PlatformID = "youtube"
)

// Post is a historical or scheduled post as owned by the dashboard's
// storage layer. The engine reads it and never writes it back.
type Post struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	ScheduledTime time.Time `json:"scheduledTime"`
	// Platforms the post targets; never empty for well-formed input.
	Platforms []PlatformID `json:"platforms"`
	Likes     int          `json:"likes"`
	Comments  int          `json:"comments"`
	Shares    int          `json:"shares"`
	Views     int          `json:"views"`
	Reach     int          `json:"reach"`
}

// FirstPlatform returns the post's first target platform, the attribution
// used by hashtag aggregation. Time-slot aggregation considers every
// targeted platform instead; the asymmetry is kept on purpose.
func (p Post) FirstPlatform() PlatformID {
	if len(p.Platforms) == 0 {
		return ""
	}
	return p.Platforms[0]
}

// TargetsPlatform reports whether the post targets the given platform.
func (p Post) TargetsPlatform(platform PlatformID) bool {
	for _, id := range p.Platforms {
		if id == platform {
			return true
		}
	}
	return false
}

// TimeSlot is a (day-of-week, hour) bucket with aggregated engagement.
type TimeSlot struct {
	DayOfWeek     time.Weekday `json:"dayOfWeek"`
	Hour          int          `json:"hour"`
	PostCount     int          `json:"postCount"`
	AvgEngagement float64      `json:"avgEngagement"`
	// Confidence grows with sample size: min(PostCount/5, 1).
	Confidence float64 `json:"confidence"`
}

// ScheduledSlot is a time slot paired with its next concrete occurrence,
// ready for a scheduling UI.
type ScheduledSlot struct {
	TimeSlot
	Date time.Time `json:"date"`
}

// Trend classifies recent vs prior usage frequency of a hashtag.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Performance buckets a hashtag's average engagement.
type Performance string

const (
	PerformanceHigh   Performance = "high"
	PerformanceMedium Performance = "medium"
	PerformanceLow    Performance = "low"
)

// HashtagStat holds aggregated statistics for one hashtag.
type HashtagStat struct {
	Tag           string       `json:"tag"`
	UsageCount    int          `json:"usageCount"`
	AvgEngagement float64      `json:"avgEngagement"`
	AvgReach      float64      `json:"avgReach"`
	Trend         Trend        `json:"trend"`
	Performance   Performance  `json:"performance"`
	Platforms     []PlatformID `json:"platforms"`
	// Up to five co-occurring tags, ranked by count; never contains Tag.
	RelatedHashtags []string  `json:"relatedHashtags"`
	LastUsed        time.Time `json:"lastUsed"`
}

// HashtagSet is a curated bundle of hashtags owned by the storage layer.
// AvgEngagement and TotalUsage are recomputed against current stats.
type HashtagSet struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Hashtags      []string `json:"hashtags"`
	Category      string   `json:"category"`
	AvgEngagement float64  `json:"avgEngagement"`
	TotalUsage    int      `json:"totalUsage"`
}

// Combination is a hashtag pair with its aggregate performance.
type Combination struct {
	Combination   [2]string `json:"combination"`
	AvgEngagement float64   `json:"avgEngagement"`
	UsageCount    int       `json:"usageCount"`
}

// Insights summarizes the data behind a recommendation.
type Insights struct {
	TotalPosts         int     `json:"totalPosts"`
	AvgEngagement      float64 `json:"avgEngagement"`
	ImprovementPercent int     `json:"improvementPercent"`
}

// Recommendation is the output of time-slot analysis: the best window,
// named alternatives, and a human-readable justification.
type Recommendation struct {
	Recommended  ScheduledSlot   `json:"recommended"`
	Alternatives []ScheduledSlot `json:"alternatives"`
	Reason       string          `json:"reason"`
	Confidence   float64         `json:"confidence"`
	Insights     Insights        `json:"insights"`
}

// Suggestion proposes a hashtag for new content.
type Suggestion struct {
	Tag        string  `json:"tag"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}
