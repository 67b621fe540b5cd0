package chat

import "time"

// Message roles as rendered in prompts and transcripts.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message persists individual turns for display and prompt context.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
