// Package ws provides a websocket transport for the same conversational
// turns the REST and SSE endpoints serve.
package ws

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/konantech/hr-assistant/backend/internal/service/conversation"
)

// Handler upgrades a connection and runs a synchronous message loop:
// each inbound text frame is one conversational turn.
type Handler struct {
	convSvc  *conversation.Service
	upgrader websocket.Upgrader
}

// New creates the websocket handler.
func New(convSvc *conversation.Service) *Handler {
	return &Handler{
		convSvc: convSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type outboundMessage struct {
	Type     string `json:"type"`
	Content  string `json:"content,omitempty"`
	Decision string `json:"decision,omitempty"`
	State    string `json:"state,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", sessionID)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error for session=%s: %v", sessionID, err)
			}
			return
		}

		if inbound.Type != "text" || strings.TrimSpace(inbound.Content) == "" {
			h.writeJSON(conn, outboundMessage{Type: "error", Error: "expected a text frame with content"})
			continue
		}

		reply, err := h.convSvc.Respond(r.Context(), sessionID, strings.TrimSpace(inbound.Content), nil)
		if err != nil {
			h.writeJSON(conn, outboundMessage{Type: "error", Error: err.Error()})
			continue
		}

		h.writeJSON(conn, outboundMessage{
			Type:     "reply",
			Content:  reply.Text,
			Decision: string(reply.Decision),
			State:    string(reply.State),
		})
	}
}

func (h *Handler) writeJSON(conn *websocket.Conn, msg outboundMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}
