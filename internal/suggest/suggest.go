// Package suggest proposes hashtags for new, not-yet-published content by
// combining content keywords with a curated per-platform popularity table.
// It needs no post history.
package suggest

import (
	"sort"
	"strings"

	"postpulse/internal/model"
	"postpulse/internal/profile"
	"postpulse/internal/util"
)

const (
	maxKeywords    = 5
	maxSuggestions = 10
	minKeywordLen  = 4

	contentConfidence  = 0.8
	trendingConfidence = 0.9
)

// The dashboard's audience writes in French; short function words below
// would otherwise dominate keyword extraction.
var stopWords = map[string]struct{}{
	"dans": {}, "avec": {}, "pour": {}, "cette": {}, "votre": {}, "vous": {},
	"nous": {}, "mais": {}, "tout": {}, "tous": {}, "toute": {}, "toutes": {},
	"être": {}, "avoir": {}, "faire": {}, "plus": {}, "très": {}, "bien": {},
	"aussi": {}, "comme": {}, "leur": {}, "leurs": {}, "sans": {}, "sous": {},
	"entre": {}, "alors": {}, "donc": {}, "quand": {}, "chez": {}, "elle": {},
	"elles": {}, "celui": {}, "celle": {}, "ceux": {}, "notre": {}, "même": {},
	"autre": {}, "autres": {}, "depuis": {}, "encore": {}, "ainsi": {},
	"sont": {}, "était": {}, "vers": {},
}

// Generator proposes hashtags using an injectable popularity table.
type Generator struct {
	popular profile.PopularTags
}

// NewGenerator builds a generator over the given popularity table.
func NewGenerator(popular profile.PopularTags) *Generator {
	return &Generator{popular: popular}
}

// ContentKeywords extracts up to five keywords from free text: lower-cased,
// punctuation stripped, stop words and words shorter than four characters
// dropped, deduplicated in first-appearance order.
func ContentKeywords(content string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, tok := range util.Tokenize(content) {
		if len([]rune(tok)) < minKeywordLen {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

// Suggest merges keyword-derived and platform-popular hashtags, skipping
// tags already present on the post, and returns the top ten by confidence.
func (g *Generator) Suggest(content string, platform model.PlatformID, existing []string) []model.Suggestion {
	present := make(map[string]struct{}, len(existing))
	for _, tag := range existing {
		present[normalizeTag(tag)] = struct{}{}
	}

	var out []model.Suggestion
	proposed := make(map[string]struct{})
	add := func(tag string, confidence float64, category string) {
		if _, ok := present[tag]; ok {
			return
		}
		if _, ok := proposed[tag]; ok {
			return
		}
		proposed[tag] = struct{}{}
		out = append(out, model.Suggestion{Tag: tag, Confidence: confidence, Category: category})
	}

	for _, kw := range ContentKeywords(content) {
		add("#"+kw, contentConfidence, "content")
	}
	for _, tag := range g.popular.For(platform) {
		add(normalizeTag(tag), trendingConfidence, "trending")
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return tag
	}
	if !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	return tag
}
