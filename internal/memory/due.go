package memory

import (
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
)

// IsDue reports whether a word with the given status should be reviewed now.
// A word that was never scheduled is not due.
func IsDue(status domain.MemoryStatus, now time.Time) bool {
	if status.NextReviewTime == nil {
		return false
	}
	return !now.Before(*status.NextReviewTime)
}

// Classify partitions the catalog into words due for review and words never
// seen. Words with a status that are not yet due are in flight and appear in
// neither list.
func Classify(catalog []domain.WordRecord, statusMap domain.StatusMap, now time.Time) (due, fresh []domain.WordRecord) {
	for _, word := range catalog {
		status, seen := statusMap[word.ID]
		switch {
		case !seen:
			fresh = append(fresh, word)
		case IsDue(status, now):
			due = append(due, word)
		}
	}
	return due, fresh
}
