package assistant

import (
	"fmt"
	"strings"
	"testing"

	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

func TestBuildSystemPromptEmbedsPolicyAndResume(t *testing.T) {
	got := BuildSystemPrompt(Request{
		PolicyText:    "• 24 paid leave days per year.",
		ResumeExcerpt: "Senior gopher, 2016-present.",
	})

	if !strings.Contains(got, "HR POLICY:\n• 24 paid leave days per year.") {
		t.Fatalf("policy missing from prompt:\n%s", got)
	}
	if !strings.Contains(got, "RESUME:\nSenior gopher, 2016-present.") {
		t.Fatalf("resume missing from prompt:\n%s", got)
	}
}

func TestBuildSystemPromptOmitsEmptyResume(t *testing.T) {
	got := BuildSystemPrompt(Request{PolicyText: "policy", ResumeExcerpt: "  "})
	if strings.Contains(got, "RESUME:") {
		t.Fatalf("empty resume should be omitted:\n%s", got)
	}
}

func TestHistoryWindowBounds(t *testing.T) {
	messages := make([]chat.Message, 0, 25)
	for i := 0; i < 25; i++ {
		role := chat.RoleUser
		if i%2 == 1 {
			role = chat.RoleAssistant
		}
		messages = append(messages, chat.Message{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}

	window := HistoryWindow(messages, 10)
	if len(window) != 10 {
		t.Fatalf("expected window of 10, got %d", len(window))
	}
	if window[0].Content != "msg-15" || window[9].Content != "msg-24" {
		t.Fatalf("window not the most recent messages: first=%s last=%s",
			window[0].Content, window[9].Content)
	}
}

func TestHistoryWindowDropsUnknownRoles(t *testing.T) {
	window := HistoryWindow([]chat.Message{
		{Role: chat.RoleUser, Content: "hi"},
		{Role: "system", Content: "internal"},
		{Role: chat.RoleAssistant, Content: "hello"},
	}, 10)
	if len(window) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(window))
	}
}
