// Package memory implements the Ebbinghaus-curve scheduling core: per-word
// memory state updates, due-review queries, daily/session quota checks,
// study-group selection and progress aggregation. Everything here is pure
// in-memory computation; persistence belongs to the repository layer.
package memory

import "time"

// ReviewIntervals are the review delays in minutes for stages 1..6:
// 30 minutes, 1 day, 3 days, 7 days, 15 days, 30 days.
// A stage beyond the table keeps using the last entry.
var ReviewIntervals = []int{30, 1440, 4320, 10080, 21600, 43200}

// FirstReviewDelay is the fixed delay after the very first exposure
// (stage 0 -> 1), independent of the interval table.
const FirstReviewDelay = 30 * time.Minute

// NextReviewTime computes when a word at the given stage should next be
// reviewed, counted from now.
func NextReviewTime(stage int, now time.Time) time.Time {
	idx := stage - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ReviewIntervals) {
		idx = len(ReviewIntervals) - 1
	}
	return now.Add(time.Duration(ReviewIntervals[idx]) * time.Minute)
}
