// Package hashtag extracts and aggregates hashtag statistics from post
// content.
package hashtag

import (
	"regexp"
	"strings"
)

// Tag bodies run over word characters plus the Latin-1 supplement and
// Latin Extended-A/B ranges so accented tags are captured whole. The
// multiplication and division signs sit inside that block and are not
// letters, so the ranges skip them.
var tagPattern = regexp.MustCompile(`#[0-9A-Za-z_\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{024F}]+`)

// Extract returns the hashtags found in text, lower-cased, deduplicated
// preserving first-occurrence order. Tags whose body is shorter than two
// characters are dropped. Empty input yields an empty slice.
func Extract(text string) []string {
	if text == "" {
		return nil
	}
	matches := tagPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := strings.ToLower(m)
		if len([]rune(tag)) < 3 { // "#" plus at least two body characters
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
