package model

import (
	"math"
	"testing"
)

func TestEngagementRatioUsesReportedViews(t *testing.T) {
	p := Post{Likes: 100, Comments: 10, Shares: 5, Views: 2000}
	got := EngagementRatio(p)
	if math.Abs(got-5.75) > 1e-9 {
		t.Fatalf("ratio = %v, want 5.75", got)
	}
}

func TestEngagementRatioEstimatesMissingViews(t *testing.T) {
	// 20 interactions, no views: estimate 200 views, ratio is always 10%.
	p := Post{Likes: 15, Comments: 3, Shares: 2}
	if got := EngagementRatio(p); math.Abs(got-10) > 1e-9 {
		t.Fatalf("ratio = %v, want 10", got)
	}
}

func TestEngagementRatioZeroGuard(t *testing.T) {
	got := EngagementRatio(Post{})
	if got != 0 {
		t.Fatalf("ratio = %v, want 0", got)
	}
	if math.IsNaN(got) {
		t.Fatal("ratio must never be NaN")
	}
}

func TestMeanEngagement(t *testing.T) {
	posts := []Post{
		{Likes: 100, Comments: 10, Shares: 5, Views: 2000}, // 5.75
		{Likes: 50, Comments: 5, Shares: 2, Views: 1000},   // 5.7
	}
	if got := MeanEngagement(posts); math.Abs(got-5.725) > 1e-9 {
		t.Fatalf("mean = %v, want 5.725", got)
	}
	if got := MeanEngagement(nil); got != 0 {
		t.Fatalf("empty mean = %v, want 0", got)
	}
}

func TestFirstPlatform(t *testing.T) {
	p := Post{Platforms: []PlatformID{PlatformInstagram, PlatformFacebook}}
	if got := p.FirstPlatform(); got != PlatformInstagram {
		t.Fatalf("first platform = %s", got)
	}
	if got := (Post{}).FirstPlatform(); got != "" {
		t.Fatalf("empty first platform = %q", got)
	}
	if !p.TargetsPlatform(PlatformFacebook) || p.TargetsPlatform(PlatformTikTok) {
		t.Fatal("TargetsPlatform mismatch")
	}
}
