package hashtag

import (
	"sort"

	"postpulse/internal/model"
)

const (
	comboWindow   = 3 // pairs are formed within a 3-tag sliding span
	comboMinUsage = 2
	comboLimit    = 20
)

type comboAccum struct {
	tags  [2]string
	sum   float64
	count int
}

// Combinations scores 2-hashtag pairs over posts carrying at least two
// hashtags. Pairs are formed inside a bounded sliding window rather than
// the full cross product, which caps cost on tag-heavy posts. Pair keys
// are order-insensitive, combinations used fewer than twice are dropped,
// and the result is capped at the top 20 by average engagement.
func Combinations(posts []model.Post) []model.Combination {
	byKey := make(map[string]*comboAccum)
	var order []string

	for _, p := range posts {
		tags := Extract(p.Content)
		if len(tags) < 2 {
			continue
		}
		ratio := model.EngagementRatio(p)
		for i := 0; i < len(tags); i++ {
			for j := i + 1; j < len(tags) && j < i+comboWindow; j++ {
				a, b := tags[i], tags[j]
				if b < a {
					a, b = b, a
				}
				key := a + "|" + b
				acc, ok := byKey[key]
				if !ok {
					acc = &comboAccum{tags: [2]string{a, b}}
					byKey[key] = acc
					order = append(order, key)
				}
				acc.sum += ratio
				acc.count++
			}
		}
	}

	out := make([]model.Combination, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		if acc.count < comboMinUsage {
			continue
		}
		out = append(out, model.Combination{
			Combination:   acc.tags,
			AvgEngagement: acc.sum / float64(acc.count),
			UsageCount:    acc.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AvgEngagement > out[j].AvgEngagement
	})
	if len(out) > comboLimit {
		out = out[:comboLimit]
	}
	return out
}
