package domain

import "time"

// User represents a bot user
type User struct {
	UserID     int64
	Authorized bool
	CreatedAt  time.Time
}

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateWaitingPassword UserState = "waiting_password"
	StateStudying        UserState = "studying"
)

// StateData holds temporary data for user's current state.
// During a study session it carries the in-flight batch and the answers
// collected so far; an abandoned session is simply overwritten.
type StateData struct {
	State     UserState
	Batch     *LearningBatch
	Position  int
	Revealed  bool
	Results   []AnswerResult
	MessageID int // For editing messages
}
