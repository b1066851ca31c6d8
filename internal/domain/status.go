package domain

import "time"

// MaxStage is the final memory stage; a word at MaxStage that keeps being
// answered correctly stays there.
const MaxStage = 5

// StageCount is the number of histogram buckets (stages 0..MaxStage).
const StageCount = MaxStage + 1

// MemoryStatus is the per-(user, word) memory state.
// Stage 0 means never studied; stages 1..5 are successive successful reviews.
type MemoryStatus struct {
	Stage          int        `json:"stage"`
	NextReviewTime *time.Time `json:"nextReviewTime"`
	Reviews        int        `json:"reviews"`
	CorrectReviews int        `json:"correctReviews"`
	LastReviewTime *time.Time `json:"lastReviewTime"`
	FirstLearnTime *time.Time `json:"firstLearnTime"`
}

// StatusMap maps word IDs to their memory state for one user.
type StatusMap map[string]MemoryStatus

// LearningProgress is the per-user aggregate the external store persists.
type LearningProgress struct {
	TotalWordsLearned   int    `json:"totalWordsLearned"`
	WordsAtStage        []int  `json:"wordsAtStage"`
	DailyLearnedCount   int    `json:"dailyLearnedCount"`
	CurrentSessionCount int    `json:"currentSessionCount"`
	LastLearnDate       string `json:"lastLearnDate"`
}

// NewLearningProgress returns a fresh progress record with an empty histogram.
func NewLearningProgress() *LearningProgress {
	return &LearningProgress{
		WordsAtStage: make([]int, StageCount),
	}
}

// EnsureHistogram grows WordsAtStage to StageCount buckets if a stored record
// came back short or nil.
func (p *LearningProgress) EnsureHistogram() {
	for len(p.WordsAtStage) < StageCount {
		p.WordsAtStage = append(p.WordsAtStage, 0)
	}
}

// LearningBatch is one selected study/review round.
type LearningBatch struct {
	Words       []WordRecord
	ReviewCount int
	NewCount    int
}

// AnswerResult is a single quiz outcome reported back after a round.
type AnswerResult struct {
	WordID    string
	IsCorrect bool
}

// PracticeSummary is the outcome of a submitted round.
type PracticeSummary struct {
	CorrectCount int
	TotalCount   int
	CorrectRate  int // percentage, 0-100
}

// LearningStats is the full-recompute overview shown on the stats screen.
type LearningStats struct {
	TotalWords        int
	LearnedWords      int
	NotLearnedWords   int
	StageDistribution []int
	DailyLearnedCount int
	LastLearnDate     string
}
