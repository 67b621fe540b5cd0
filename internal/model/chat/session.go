package chat

import "time"

// State tracks where a session sits in the mood check-in flow.
type State string

const (
	// StateIdle means the next message is routed through the normal fast paths.
	StateIdle State = "idle"
	// StateAwaitingMoodScore means a check-in was requested and the next
	// non-fast-path message is parsed as a 1-10 answer.
	StateAwaitingMoodScore State = "awaiting_mood_score"
)

// Session captures a transient anonymous conversation.
type Session struct {
	ID        string    `json:"id"`
	State     State     `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}
