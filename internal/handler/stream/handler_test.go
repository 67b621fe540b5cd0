package stream

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/konantech/hr-assistant/backend/internal/model/policy"
	chatservice "github.com/konantech/hr-assistant/backend/internal/service/chat"
	"github.com/konantech/hr-assistant/backend/internal/service/conversation"
	"github.com/konantech/hr-assistant/backend/internal/store/moodlog"
)

func setupHandler(t *testing.T) (*Handler, string) {
	t.Helper()

	chatSvc := chatservice.NewService()
	moodStore := moodlog.NewStore(filepath.Join(t.TempDir(), "mood_log.csv"))
	convSvc := conversation.NewService(chatSvc, moodStore, nil, policy.Default(), 5*time.Second)

	session, err := chatSvc.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	return New(convSvc), session.ID
}

func decodeEvents(t *testing.T, body string) []StreamResponse {
	t.Helper()

	var events []StreamResponse
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var event StreamResponse
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			t.Fatalf("decode event %q: %v", line, err)
		}
		events = append(events, event)
	}
	return events
}

func TestStreamFastPathEmitsSingleMessage(t *testing.T) {
	handler, sessionID := setupHandler(t)
	resp := httptest.NewRecorder()

	if err := handler.HandleStreamRequest(context.Background(), resp, sessionID, "hello"); err != nil {
		t.Fatalf("HandleStreamRequest err: %v", err)
	}

	if ct := resp.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type: %q", ct)
	}

	events := decodeEvents(t, resp.Body.String())
	if len(events) != 3 {
		t.Fatalf("expected start/message/end, got %d events", len(events))
	}
	if events[0].Event != "start" || events[1].Event != "message" || events[2].Event != "end" {
		t.Fatalf("unexpected event order: %+v", events)
	}
	if events[1].Content != conversation.GreetingReply {
		t.Fatalf("unexpected message content: %q", events[1].Content)
	}
	if !events[2].Finished {
		t.Fatal("end event should be marked finished")
	}
}

func TestStreamUnknownSessionEmitsError(t *testing.T) {
	handler, _ := setupHandler(t)
	resp := httptest.NewRecorder()

	if err := handler.HandleStreamRequest(context.Background(), resp, "missing", "hello"); err == nil {
		t.Fatal("expected error for unknown session")
	}

	events := decodeEvents(t, resp.Body.String())
	found := false
	for _, event := range events {
		if event.Event == "error" && event.Error != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an error event, got %+v", events)
	}
}
