package memory

import (
	"errors"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
)

// ErrEmptyWordID is returned when an update is requested without a word ID.
var ErrEmptyWordID = errors.New("word id is empty")

// Update records one quiz answer for wordID in statusMap and returns the new
// status together with the stage the word held before the answer.
//
// Stage rules: a correct answer advances the stage (capped at MaxStage); a
// wrong answer holds the current stage, except stage 0 which always advances
// to 1 because first exposure enters the review cycle regardless of
// correctness. The next review time is recomputed from the new stage on every
// answer; the 0->1 transition uses the fixed FirstReviewDelay instead of the
// interval table.
func Update(statusMap domain.StatusMap, wordID string, isCorrect bool, now time.Time) (domain.MemoryStatus, int, error) {
	if wordID == "" {
		return domain.MemoryStatus{}, 0, ErrEmptyWordID
	}

	status := statusMap[wordID]

	status.Reviews++
	previousStage := status.Stage

	if status.Stage == 0 {
		firstLearn := now
		status.FirstLearnTime = &firstLearn
	}

	if isCorrect {
		status.CorrectReviews++
		if status.Stage < domain.MaxStage {
			status.Stage++
		}
	} else if status.Stage == 0 {
		status.Stage = 1
	}

	var next time.Time
	if previousStage == 0 && status.Stage == 1 {
		next = now.Add(FirstReviewDelay)
	} else {
		next = NextReviewTime(status.Stage, now)
	}
	status.NextReviewTime = &next

	last := now
	status.LastReviewTime = &last

	statusMap[wordID] = status

	return status, previousStage, nil
}
