package assistant

import (
	"strings"

	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

// BuildSystemPrompt embeds the policy document and the resume excerpt
// (already bounded at ingestion) into the assistant's system prompt.
func BuildSystemPrompt(req Request) string {
	var builder strings.Builder
	builder.WriteString("You are an HR assistant. Use the HR policy and resume (if any) to answer clearly and professionally.")
	builder.WriteString("\n\nHR POLICY:\n")
	builder.WriteString(strings.TrimSpace(req.PolicyText))

	if excerpt := strings.TrimSpace(req.ResumeExcerpt); excerpt != "" {
		builder.WriteString("\n\nRESUME:\n")
		builder.WriteString(excerpt)
	}

	return builder.String()
}

// HistoryWindow returns the most recent limit messages, oldest first,
// dropping anything without a user or assistant role.
func HistoryWindow(messages []chat.Message, limit int) []chat.Message {
	if limit < 1 {
		limit = 1
	}

	start := 0
	if len(messages) > limit {
		start = len(messages) - limit
	}

	window := make([]chat.Message, 0, len(messages)-start)
	for _, msg := range messages[start:] {
		if msg.Role != chat.RoleUser && msg.Role != chat.RoleAssistant {
			continue
		}
		window = append(window, msg)
	}
	return window
}
