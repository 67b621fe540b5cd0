package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderDeepSeek = "deepseek"
	ProviderArk      = "ark"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server  ServerConfig
	LLM     LLMConfig
	MoodLog MoodLogConfig
	Resume  ResumeConfig
	Policy  PolicyConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	llm, err := loadLLMConfig()
	if err != nil {
		return nil, err
	}

	resume, err := loadResumeConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		LLM:     llm,
		MoodLog: MoodLogConfig{Path: getEnvOrDefault("MOOD_LOG_PATH", "mood_log.csv")},
		Resume:  resume,
		Policy:  PolicyConfig{Path: strings.TrimSpace(os.Getenv("HR_POLICY_PATH"))},
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// LLMConfig describes the completion service behind the assistant gateway.
type LLMConfig struct {
	Provider       string
	APIKey         string
	BaseURL        string
	Model          string
	Temperature    float64
	MaxTokens      int
	TimeoutSeconds int
	HistoryLimit   int

	// Ark provider credentials.
	ArkAPIKey    string
	ArkAccessKey string
	ArkSecretKey string
	ArkBaseURL   string
	ArkRegion    string
}

// Enabled reports whether the selected provider has usable credentials.
// Checked once at startup so a missing key blocks gateway use without a
// failed remote call.
func (c LLMConfig) Enabled() bool {
	switch c.Provider {
	case ProviderArk:
		return c.Model != "" && (c.ArkAPIKey != "" || (c.ArkAccessKey != "" && c.ArkSecretKey != ""))
	default:
		return c.APIKey != "" && c.Model != ""
	}
}

// NewChatModel builds an eino chat model for the ark provider.
func (c LLMConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if c.Provider != ProviderArk || !c.Enabled() {
		return nil, fmt.Errorf("ark credentials missing: provide ARK_API_KEY or ARK_ACCESS_KEY + ARK_SECRET_KEY and LLM_MODEL")
	}

	temperature := float32(c.Temperature)
	maxTokens := c.MaxTokens

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.ArkBaseURL,
		Region:      c.ArkRegion,
		APIKey:      c.ArkAPIKey,
		AccessKey:   c.ArkAccessKey,
		SecretKey:   c.ArkSecretKey,
		Model:       c.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadLLMConfig() (LLMConfig, error) {
	provider := strings.ToLower(getEnvOrDefault("LLM_PROVIDER", ProviderDeepSeek))
	if provider != ProviderDeepSeek && provider != ProviderArk {
		return LLMConfig{}, fmt.Errorf("invalid LLM_PROVIDER value %q: want %q or %q", provider, ProviderDeepSeek, ProviderArk)
	}

	temperature := 0.2
	if override, err := parseOptionalFloatEnv("LLM_TEMPERATURE"); err != nil {
		return LLMConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	maxTokens := 600
	if override, err := parseOptionalIntEnv("LLM_MAX_TOKENS"); err != nil {
		return LLMConfig{}, err
	} else if override != nil && *override > 0 {
		maxTokens = *override
	}

	timeout := 30
	if override, err := parseOptionalIntEnv("LLM_TIMEOUT"); err != nil {
		return LLMConfig{}, err
	} else if override != nil && *override > 0 {
		timeout = *override
	}

	historyLimit := 10
	if override, err := parseOptionalIntEnv("LLM_HISTORY_LIMIT"); err != nil {
		return LLMConfig{}, err
	} else if override != nil {
		if *override < 1 {
			historyLimit = 1
		} else {
			historyLimit = *override
		}
	}

	return LLMConfig{
		Provider:       provider,
		APIKey:         strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY")),
		BaseURL:        getEnvOrDefault("LLM_BASE_URL", "https://api.deepseek.com"),
		Model:          getEnvOrDefault("LLM_MODEL", "deepseek-chat"),
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		TimeoutSeconds: timeout,
		HistoryLimit:   historyLimit,
		ArkAPIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		ArkAccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		ArkSecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		ArkBaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		ArkRegion:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
	}, nil
}

// MoodLogConfig locates the append-only mood log.
type MoodLogConfig struct {
	Path string
}

// ResumeConfig bounds resume excerpts used as prompt context.
type ResumeConfig struct {
	MaxChars int
}

func loadResumeConfig() (ResumeConfig, error) {
	maxChars := 3000
	if override, err := parseOptionalIntEnv("RESUME_MAX_CHARS"); err != nil {
		return ResumeConfig{}, err
	} else if override != nil && *override > 0 {
		maxChars = *override
	}
	return ResumeConfig{MaxChars: maxChars}, nil
}

// PolicyConfig optionally overrides the built-in HR policy document.
type PolicyConfig struct {
	Path string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
