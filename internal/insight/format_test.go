package insight

import (
	"strings"
	"testing"
	"time"

	"postpulse/internal/model"
	"postpulse/internal/timeslot"
)

// wedNoon is a Wednesday, 12:00 local.
var wedNoon = time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)

func TestNextOccurrenceLaterThisWeek(t *testing.T) {
	got := NextOccurrence(time.Friday, 9, wedNoon)
	want := time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextOccurrenceEarlierWeekdayWrapsWeek(t *testing.T) {
	got := NextOccurrence(time.Monday, 9, wedNoon)
	want := time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextOccurrenceSameDayLaterHour(t *testing.T) {
	got := NextOccurrence(time.Wednesday, 18, wedNoon)
	want := time.Date(2026, 2, 11, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNextOccurrenceSameDayPassedHourRollsForward(t *testing.T) {
	// Equal hour counts as passed: roll exactly seven days.
	for _, hour := range []int{9, 12} {
		got := NextOccurrence(time.Wednesday, hour, wedNoon)
		want := time.Date(2026, 2, 18, hour, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("hour %d: got %v, want %v", hour, got, want)
		}
	}
}

func TestImprovementPercent(t *testing.T) {
	if got := ImprovementPercent(5.75, 5); got != 15 {
		t.Fatalf("got %d, want 15", got)
	}
	if got := ImprovementPercent(4, 5); got != -20 {
		t.Fatalf("got %d, want -20", got)
	}
	if got := ImprovementPercent(5, 0); got != 0 {
		t.Fatalf("zero-average guard: got %d, want 0", got)
	}
}

func TestReasonThresholds(t *testing.T) {
	slot := model.TimeSlot{DayOfWeek: time.Tuesday, Hour: 18}
	if r := Reason(slot, model.PlatformInstagram, 0, 0); !strings.Contains(r, "optimal") {
		t.Fatalf("zero-post reason = %q", r)
	}
	if r := Reason(slot, model.PlatformInstagram, 9, 12); !strings.Contains(r, "Based on 9 posts") {
		t.Fatalf("few-post reason = %q", r)
	}
	if r := Reason(slot, model.PlatformInstagram, 10, 12); !strings.Contains(r, "+12%") {
		t.Fatalf("full reason = %q", r)
	}
}

func TestBuildCarriesSlotAndInsights(t *testing.T) {
	ranked := timeslot.Ranked{
		Recommended: model.TimeSlot{DayOfWeek: time.Tuesday, Hour: 18, PostCount: 12, AvgEngagement: 6, Confidence: 1},
		Alternatives: []model.TimeSlot{
			{DayOfWeek: time.Sunday, Hour: 11, PostCount: 3, AvgEngagement: 4, Confidence: 0.6},
		},
	}
	rec := Build(ranked, model.PlatformInstagram, 15, 5, wedNoon)
	if rec.Insights.TotalPosts != 15 || rec.Insights.ImprovementPercent != 20 {
		t.Fatalf("insights = %+v", rec.Insights)
	}
	if rec.Confidence != 1 {
		t.Fatalf("confidence = %v", rec.Confidence)
	}
	if rec.Recommended.Date.Weekday() != time.Tuesday || rec.Recommended.Date.Hour() != 18 {
		t.Fatalf("recommended date = %v", rec.Recommended.Date)
	}
	if !rec.Recommended.Date.After(wedNoon) {
		t.Fatal("recommended date must be in the future")
	}
	if len(rec.Alternatives) != 1 || rec.Alternatives[0].Date.Weekday() != time.Sunday {
		t.Fatalf("alternatives = %+v", rec.Alternatives)
	}
}
