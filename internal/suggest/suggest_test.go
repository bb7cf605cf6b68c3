package suggest

import (
	"reflect"
	"testing"

	"postpulse/internal/model"
	"postpulse/internal/profile"
)

func TestContentKeywordsFiltersAndCaps(t *testing.T) {
	got := ContentKeywords("Nous lançons notre nouvelle collection été avec des matières durables, éthiques, responsables.")
	// "nous", "avec", "notre" are stop words; "des" is too short; the rest
	// keep first-appearance order, capped at five.
	want := []string{"lançons", "nouvelle", "collection", "matières", "durables"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
}

func TestContentKeywordsDedupe(t *testing.T) {
	got := ContentKeywords("Promotion promotion PROMOTION exceptionnelle")
	want := []string{"promotion", "exceptionnelle"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keywords = %v, want %v", got, want)
	}
}

func TestContentKeywordsEmpty(t *testing.T) {
	if got := ContentKeywords(""); len(got) != 0 {
		t.Fatalf("keywords = %v, want none", got)
	}
}

func TestSuggestMergesAndRanks(t *testing.T) {
	popular := profile.PopularTags{
		model.PlatformInstagram: {"#instagood", "#reels"},
	}
	g := NewGenerator(popular)
	got := g.Suggest("Collection capsule streetwear disponible", model.PlatformInstagram, nil)

	// Trending (0.9) sorts ahead of content (0.8).
	if len(got) == 0 || got[0].Category != "trending" || got[0].Confidence != 0.9 {
		t.Fatalf("first suggestion = %+v", got[0])
	}
	var sawContent bool
	for _, s := range got {
		if s.Category == "content" {
			sawContent = true
			if s.Confidence != 0.8 {
				t.Fatalf("content confidence = %v", s.Confidence)
			}
		}
	}
	if !sawContent {
		t.Fatalf("no content suggestions in %+v", got)
	}
}

func TestSuggestSkipsExistingTags(t *testing.T) {
	g := NewGenerator(profile.PopularTags{
		model.PlatformInstagram: {"#instagood"},
	})
	got := g.Suggest("streetwear unique", model.PlatformInstagram, []string{"#instagood", "streetwear"})
	for _, s := range got {
		if s.Tag == "#instagood" || s.Tag == "#streetwear" {
			t.Fatalf("existing tag resurfaced: %+v", s)
		}
	}
}

func TestSuggestCapsAtTen(t *testing.T) {
	g := NewGenerator(profile.PopularTags{
		model.PlatformInstagram: {"#p1", "#p2", "#p3", "#p4", "#p5", "#p6", "#p7", "#p8"},
	})
	got := g.Suggest("collection capsule streetwear exclusive disponible maintenant", model.PlatformInstagram, nil)
	if len(got) != 10 {
		t.Fatalf("got %d suggestions, want 10", len(got))
	}
}

func TestSuggestUnknownPlatformUsesInstagramList(t *testing.T) {
	g := NewGenerator(profile.DefaultPopularTags())
	got := g.Suggest("", "myspace", nil)
	if len(got) == 0 {
		t.Fatal("expected fallback trending suggestions")
	}
	if got[0].Tag != "#instagood" {
		t.Fatalf("fallback list starts with %s", got[0].Tag)
	}
}
