package timeslot

import (
	"sort"

	"postpulse/internal/model"
)

const maxAlternatives = 2

// Ranked is the outcome of ordering slots: the best window plus up to two
// named alternatives.
type Ranked struct {
	Recommended  model.TimeSlot
	Alternatives []model.TimeSlot
}

// Rank orders slots by average engagement, descending, breaking ties by
// higher post count and then insertion order. Callers must not invoke it
// with an empty slice; the empty case is handled by the default profile.
func Rank(slots []model.TimeSlot) Ranked {
	ordered := make([]model.TimeSlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].AvgEngagement != ordered[j].AvgEngagement {
			return ordered[i].AvgEngagement > ordered[j].AvgEngagement
		}
		return ordered[i].PostCount > ordered[j].PostCount
	})

	r := Ranked{Recommended: ordered[0], Alternatives: []model.TimeSlot{}}
	for i := 1; i < len(ordered) && i <= maxAlternatives; i++ {
		r.Alternatives = append(r.Alternatives, ordered[i])
	}
	return r
}
