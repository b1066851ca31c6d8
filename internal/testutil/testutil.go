package testutil

import (
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestWord creates a test catalog record
func NewTestWord(id, word, pinyin, translation string, rank *int) domain.WordRecord {
	return domain.WordRecord{
		ID:          id,
		Word:        word,
		Pinyin:      pinyin,
		Translation: translation,
		Rank:        rank,
	}
}

// NewTestProgress creates a progress record pinned to the given day
func NewTestProgress(day string) *domain.LearningProgress {
	progress := domain.NewLearningProgress()
	progress.LastLearnDate = day
	return progress
}

// IntPtr returns a pointer to n, for optional rank fields
func IntPtr(n int) *int {
	return &n
}

// TimePtr returns a pointer to t, for optional timestamp fields
func TimePtr(t time.Time) *time.Time {
	return &t
}
