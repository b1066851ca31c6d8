package memory

import (
	"testing"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestResetIfNewDay(t *testing.T) {
	progress := domain.NewLearningProgress()
	progress.DailyLearnedCount = 12
	progress.CurrentSessionCount = 4
	progress.LastLearnDate = "2025-03-09"

	ResetIfNewDay(progress, "2025-03-10")

	assert.Equal(t, 0, progress.DailyLearnedCount)
	assert.Equal(t, 0, progress.CurrentSessionCount)
	assert.Equal(t, "2025-03-10", progress.LastLearnDate)

	// Idempotent within the same day.
	progress.DailyLearnedCount = 5
	progress.CurrentSessionCount = 2
	ResetIfNewDay(progress, "2025-03-10")

	assert.Equal(t, 5, progress.DailyLearnedCount)
	assert.Equal(t, 2, progress.CurrentSessionCount)
}

func TestCheckLimits(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	today := domain.DateString(now)

	tests := []struct {
		name              string
		dailyCount        int
		sessionCount      int
		limits            Limits
		expectedCanLearn  bool
		expectedRemaining int
	}{
		{
			name:              "fresh day allows full session",
			dailyCount:        0,
			sessionCount:      0,
			limits:            DefaultLimits,
			expectedCanLearn:  true,
			expectedRemaining: 10,
		},
		{
			name:              "daily headroom smaller than session headroom",
			dailyCount:        17,
			sessionCount:      0,
			limits:            DefaultLimits,
			expectedCanLearn:  true,
			expectedRemaining: 3,
		},
		{
			name:             "daily limit reached rejects regardless of session count",
			dailyCount:       20,
			sessionCount:     0,
			limits:           DefaultLimits,
			expectedCanLearn: false,
		},
		{
			name:             "session limit reached",
			dailyCount:       5,
			sessionCount:     10,
			limits:           DefaultLimits,
			expectedCanLearn: false,
		},
		{
			name:              "caller-override limits",
			dailyCount:        30,
			sessionCount:      20,
			limits:            Limits{Daily: 50, Session: 25},
			expectedCanLearn:  true,
			expectedRemaining: 5,
		},
		{
			name:             "zero limits reject",
			dailyCount:       0,
			sessionCount:     0,
			limits:           Limits{Daily: 0, Session: 0},
			expectedCanLearn: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := domain.NewLearningProgress()
			progress.DailyLearnedCount = tt.dailyCount
			progress.CurrentSessionCount = tt.sessionCount
			progress.LastLearnDate = today

			check, err := CheckLimits(progress, tt.limits, now)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCanLearn, check.CanLearn)
			if tt.expectedCanLearn {
				assert.Equal(t, tt.expectedRemaining, check.Remaining)
				assert.Empty(t, check.Message)
			} else {
				assert.NotEmpty(t, check.Message)
			}
		})
	}
}

func TestCheckLimits_ResetsOnNewDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	progress := domain.NewLearningProgress()
	progress.DailyLearnedCount = 20
	progress.CurrentSessionCount = 10
	progress.LastLearnDate = "2025-03-09"

	check, err := CheckLimits(progress, DefaultLimits, now)

	assert.NoError(t, err)
	assert.True(t, check.CanLearn)
	assert.Equal(t, 10, check.Remaining)
	assert.Equal(t, "2025-03-10", progress.LastLearnDate)
}

func TestCheckLimits_InvalidLimits(t *testing.T) {
	progress := domain.NewLearningProgress()

	_, err := CheckLimits(progress, Limits{Daily: -1, Session: 10}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidLimits)

	_, err = CheckLimits(progress, Limits{Daily: 10, Session: -1}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidLimits)
}
