package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "regular date",
			input:    time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
			expected: "2025-03-14",
		},
		{
			name:     "single digit month and day padded",
			input:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			expected: "2025-01-02",
		},
		{
			name:     "end of day stays on same date",
			input:    time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
			expected: "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateString(tt.input))
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 11, 0, 0, 1, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))
}

func TestDisplayDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, "今天", DisplayDay("2025-06-10", now))
	assert.Equal(t, "昨天", DisplayDay("2025-06-09", now))
	assert.Equal(t, "2025-06-01", DisplayDay("2025-06-01", now))
}
