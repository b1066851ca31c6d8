package memory

import (
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
)

// ApplyBatchResults folds a completed round of answers into the status map
// and the aggregate progress, and returns the round summary.
//
// A word answered for the first time (previous stage 0) counts against the
// daily and session quotas and towards totalWordsLearned. The stage histogram
// tracks stages 1..MaxStage only; stage-0 words stay untracked until their
// first transition. Buckets are clamped at zero afterwards in case duplicate
// syncs drove one negative.
func ApplyBatchResults(
	progress *domain.LearningProgress,
	statusMap domain.StatusMap,
	results []domain.AnswerResult,
	now time.Time,
) (domain.PracticeSummary, error) {
	progress.EnsureHistogram()
	ResetIfNewDay(progress, domain.DateString(now))

	var summary domain.PracticeSummary

	for _, result := range results {
		status, previousStage, err := Update(statusMap, result.WordID, result.IsCorrect, now)
		if err != nil {
			return summary, err
		}

		summary.TotalCount++
		if result.IsCorrect {
			summary.CorrectCount++
		}

		if previousStage == 0 {
			progress.TotalWordsLearned++
			progress.DailyLearnedCount++
			progress.CurrentSessionCount++
		}

		if previousStage > 0 && previousStage < len(progress.WordsAtStage) {
			if progress.WordsAtStage[previousStage] > 0 {
				progress.WordsAtStage[previousStage]--
			}
		}
		if status.Stage > 0 && status.Stage < len(progress.WordsAtStage) {
			progress.WordsAtStage[status.Stage]++
		}
	}

	for i, n := range progress.WordsAtStage {
		if n < 0 {
			progress.WordsAtStage[i] = 0
		}
	}

	if summary.TotalCount > 0 {
		// Rounded to the nearest percent.
		summary.CorrectRate = (summary.CorrectCount*100 + summary.TotalCount/2) / summary.TotalCount
	}

	return summary, nil
}
