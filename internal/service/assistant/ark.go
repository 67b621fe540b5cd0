package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/konantech/hr-assistant/backend/internal/config"
	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

// ArkGateway answers via a Volcengine Ark chat model behind an eino chain.
// It is the provider to pick when ARK_* credentials are configured; it is
// also the only provider with streaming support.
type ArkGateway struct {
	chain        compose.Runnable[map[string]any, *schema.Message]
	historyLimit int
}

// NewArkGateway compiles the prompt-to-model chain once at startup.
func NewArkGateway(ctx context.Context, cfg config.LLMConfig) (*ArkGateway, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &ArkGateway{chain: runnable, historyLimit: cfg.HistoryLimit}, nil
}

// Complete runs the chain synchronously and returns the trimmed reply.
func (g *ArkGateway) Complete(ctx context.Context, req Request) (string, error) {
	response, err := g.chain.Invoke(ctx, g.chainInput(req))
	if err != nil {
		return "", fmt.Errorf("failed to run assistant chain: %w", err)
	}

	reply := strings.TrimSpace(response.Content)
	if reply == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}

// StreamComplete pumps partial output through onDelta and returns the
// concatenated reply.
func (g *ArkGateway) StreamComplete(ctx context.Context, req Request, onDelta func(string)) (string, error) {
	stream, err := g.chain.Stream(ctx, g.chainInput(req))
	if err != nil {
		return "", fmt.Errorf("failed to stream assistant chain: %w", err)
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 8)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", recvErr
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" && onDelta != nil {
			onDelta(chunk.Content)
		}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(response.Content)
	if reply == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}

func (g *ArkGateway) chainInput(req Request) map[string]any {
	return map[string]any{
		"system":  BuildSystemPrompt(req),
		"history": historyMessages(req.History, g.historyLimit),
		"query":   req.UserMessage,
	}
}

func historyMessages(messages []chat.Message, limit int) []*schema.Message {
	window := HistoryWindow(messages, limit)
	if len(window) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(window))
	for _, msg := range window {
		switch msg.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return history
}
