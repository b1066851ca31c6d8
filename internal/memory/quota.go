package memory

import (
	"errors"
	"fmt"
	"time"

	"github.com/dts-gxu/CiJingTong/internal/domain"
)

// ErrInvalidLimits is returned when a limit is negative.
var ErrInvalidLimits = errors.New("limits must be non-negative")

// Limits caps how many new words a user may start per day and per session.
// Reviews are never quota-limited.
type Limits struct {
	Daily   int
	Session int
}

// DefaultLimits are the canonical defaults of the scheduling layer; the
// settings page may override them per user.
var DefaultLimits = Limits{Daily: 20, Session: 10}

// LimitCheck is the structured outcome of a quota check. Hitting a cap is an
// expected state, not an error.
type LimitCheck struct {
	CanLearn  bool
	Message   string
	Remaining int
}

// ResetIfNewDay zeroes the daily and session counters when the calendar day
// has rolled over since the last study. Idempotent within a day.
func ResetIfNewDay(progress *domain.LearningProgress, today string) {
	if progress.LastLearnDate != today {
		progress.DailyLearnedCount = 0
		progress.CurrentSessionCount = 0
		progress.LastLearnDate = today
	}
}

// CheckLimits resets the daily counters if needed, then reports whether the
// user may start more new words and how many at most.
func CheckLimits(progress *domain.LearningProgress, limits Limits, now time.Time) (LimitCheck, error) {
	if limits.Daily < 0 || limits.Session < 0 {
		return LimitCheck{}, ErrInvalidLimits
	}

	ResetIfNewDay(progress, domain.DateString(now))

	if progress.DailyLearnedCount >= limits.Daily {
		return LimitCheck{
			Message: fmt.Sprintf("今日目标已完成（%d 个新词），明天再来吧！", limits.Daily),
		}, nil
	}

	if progress.CurrentSessionCount >= limits.Session {
		return LimitCheck{
			Message: fmt.Sprintf("本轮目标已完成（%d 个新词），休息一下再继续。", limits.Session),
		}, nil
	}

	remaining := limits.Daily - progress.DailyLearnedCount
	if r := limits.Session - progress.CurrentSessionCount; r < remaining {
		remaining = r
	}

	if remaining <= 0 {
		return LimitCheck{Message: "已到学习上限，请稍后再试。"}, nil
	}

	return LimitCheck{CanLearn: true, Remaining: remaining}, nil
}
