package chat_test

import (
	"context"
	"testing"

	model "github.com/konantech/hr-assistant/backend/internal/model/chat"
	chat "github.com/konantech/hr-assistant/backend/internal/service/chat"
)

func TestServiceCreateAndGetSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}
	if session.State != model.StateIdle {
		t.Fatalf("new session should be idle, got %s", session.State)
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := chat.NewService()

	if _, err := svc.GetSession(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestServiceSetState(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	if err := svc.SetState(ctx, session.ID, model.StateAwaitingMoodScore); err != nil {
		t.Fatalf("SetState err: %v", err)
	}

	got, _ := svc.GetSession(ctx, session.ID)
	if got.State != model.StateAwaitingMoodScore {
		t.Fatalf("state not updated, got %s", got.State)
	}

	if err := svc.SetState(ctx, "missing", model.StateIdle); err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestServiceTranscriptOrder(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	for _, content := range []string{"first", "second", "third"} {
		err := svc.SaveMessage(ctx, model.Message{
			SessionID: session.ID,
			Role:      model.RoleUser,
			Content:   content,
		})
		if err != nil {
			t.Fatalf("SaveMessage err: %v", err)
		}
	}

	transcript, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript err: %v", err)
	}
	if len(transcript) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(transcript))
	}
	if transcript[0].Content != "first" || transcript[2].Content != "third" {
		t.Fatalf("insertion order not preserved: %+v", transcript)
	}
}

func TestServiceResumeExcerpt(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, _ := svc.CreateSession(ctx)
	if err := svc.SetResume(ctx, session.ID, "ten years of Go"); err != nil {
		t.Fatalf("SetResume err: %v", err)
	}
	if got := svc.GetResume(ctx, session.ID); got != "ten years of Go" {
		t.Fatalf("unexpected excerpt: %q", got)
	}

	if err := svc.SetResume(ctx, "missing", "x"); err == nil {
		t.Fatal("expected error for missing session")
	}
}
