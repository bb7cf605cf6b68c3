package model

// EstimatedViews returns the post's view count, falling back to ten times
// the interaction count when views are unreported. Upstream platform
// integrations frequently omit view counts, so the estimator keeps every
// comparison on the same scale with partial data.
func EstimatedViews(p Post) float64 {
	if p.Views > 0 {
		return float64(p.Views)
	}
	return float64(p.Likes+p.Comments+p.Shares) * 10
}

// EngagementRatio is the shared performance unit: interactions over
// estimated views, as a percentage. A post with no interactions and no
// views scores 0, never NaN.
func EngagementRatio(p Post) float64 {
	views := EstimatedViews(p)
	if views == 0 {
		return 0
	}
	return float64(p.Likes+p.Comments+p.Shares) / views * 100
}

// MeanEngagement averages the engagement ratio over posts, left to right.
// Empty input yields 0.
func MeanEngagement(posts []Post) float64 {
	if len(posts) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range posts {
		sum += EngagementRatio(p)
	}
	return sum / float64(len(posts))
}
