package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/konantech/hr-assistant/backend/internal/config"
	"github.com/konantech/hr-assistant/backend/internal/model/chat"
)

// DeepSeekGateway answers via the DeepSeek chat-completions API, which
// speaks the OpenAI wire protocol. Sampling parameters are fixed from
// configuration: low temperature, bounded output length.
type DeepSeekGateway struct {
	client       openai.Client
	model        string
	temperature  float64
	maxTokens    int
	historyLimit int
}

// NewDeepSeekGateway builds a client against the configured base URL.
func NewDeepSeekGateway(cfg config.LLMConfig) (*DeepSeekGateway, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("deepseek credentials missing: provide DEEPSEEK_API_KEY")
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)

	return &DeepSeekGateway{
		client:       client,
		model:        cfg.Model,
		temperature:  cfg.Temperature,
		maxTokens:    cfg.MaxTokens,
		historyLimit: cfg.HistoryLimit,
	}, nil
}

// Complete sends one chat-completion request and returns the trimmed reply.
func (g *DeepSeekGateway) Complete(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	messages = append(messages, openai.SystemMessage(BuildSystemPrompt(req)))

	for _, msg := range HistoryWindow(req.History, g.historyLimit) {
		switch msg.Role {
		case chat.RoleUser:
			messages = append(messages, openai.UserMessage(msg.Content))
		case chat.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.UserMessage))

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.model),
		Messages:    messages,
		Temperature: openai.Float(g.temperature),
		MaxTokens:   openai.Int(int64(g.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("deepseek completion failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	reply := strings.TrimSpace(completion.Choices[0].Message.Content)
	if reply == "" {
		return "", ErrEmptyResponse
	}
	return reply, nil
}
