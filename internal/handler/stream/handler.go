package stream

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/konantech/hr-assistant/backend/internal/service/conversation"
	"github.com/konantech/hr-assistant/backend/pkg/utils"
)

// Handler delivers conversational turns over Server-Sent Events. Fast
// paths resolve to a single message event; freeform turns additionally
// emit delta events when the gateway provider streams.
type Handler struct {
	convSvc *conversation.Service
}

// New creates a stream handler.
func New(convSvc *conversation.Service) *Handler {
	return &Handler{convSvc: convSvc}
}

// StreamResponse is one SSE frame.
type StreamResponse struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	State     string `json:"state,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStreamRequest processes one turn and streams the outcome.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	utils.SendSSEChunk(w, flusher, StreamResponse{Event: "start", SessionID: sessionID})

	onDelta := func(delta string) {
		utils.SendSSEChunk(w, flusher, StreamResponse{
			Event:     "delta",
			SessionID: sessionID,
			Content:   delta,
		})
	}

	reply, err := h.convSvc.Respond(ctx, sessionID, userMessage, onDelta)
	if err != nil {
		utils.SendSSEChunk(w, flusher, StreamResponse{Event: "error", Error: err.Error()})
		return err
	}

	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "message",
		SessionID: sessionID,
		Content:   reply.Text,
		State:     string(reply.State),
	})

	utils.SendSSEChunk(w, flusher, StreamResponse{
		Event:     "end",
		SessionID: sessionID,
		Finished:  true,
	})

	log.Printf("[stream] completed turn for session=%s decision=%s", sessionID, reply.Decision)
	return nil
}
