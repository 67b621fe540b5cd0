// Package assistant forwards freeform questions to an external completion
// service. Everything a provider needs travels in the Request; the rest of
// the system only sees reply text or an error.
package assistant

import (
	"context"
	"errors"

	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

// ErrEmptyResponse signals the service answered with no usable text.
// Callers substitute a fixed fallback message instead of propagating an
// empty string.
var ErrEmptyResponse = errors.New("completion service returned an empty response")

// Request carries the full prompt context for one freeform turn.
type Request struct {
	PolicyText    string
	ResumeExcerpt string
	History       []chat.Message
	UserMessage   string
}

// Gateway produces one reply for one freeform user message.
type Gateway interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Streamer is an optional Gateway capability. Providers that support it
// deliver partial output through onDelta before returning the full reply;
// callers fall back to Complete when the gateway does not implement it.
type Streamer interface {
	StreamComplete(ctx context.Context, req Request, onDelta func(delta string)) (string, error)
}
