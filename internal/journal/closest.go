package journal

import (
	"sort"
	"time"
)

// Closest returns the member of dates nearest to target. The slice must be
// sorted ascending. When the two neighbours are equally distant the older
// date wins. Returns ErrNoEntries if the slice is empty.
func Closest(dates []time.Time, target time.Time) (time.Time, error) {
	if len(dates) == 0 {
		return time.Time{}, ErrNoEntries
	}

	pos := sort.Search(len(dates), func(i int) bool {
		return !dates[i].Before(target)
	})

	if pos == 0 {
		return dates[0], nil
	}
	if pos == len(dates) {
		return dates[len(dates)-1], nil
	}

	before := dates[pos-1]
	after := dates[pos]
	if after.Sub(target) < target.Sub(before) {
		return after, nil
	}
	return before, nil
}
