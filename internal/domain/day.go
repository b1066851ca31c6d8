package domain

import "time"

// DateString returns the calendar day of t in the stable YYYY-MM-DD format
// used for daily-counter rollover comparisons.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateString(a) == DateString(b)
}

// DisplayDay returns a user-friendly label for a stored day string.
func DisplayDay(day string, now time.Time) string {
	if day == DateString(now) {
		return "今天"
	}
	if day == DateString(now.AddDate(0, 0, -1)) {
		return "昨天"
	}
	return day
}
