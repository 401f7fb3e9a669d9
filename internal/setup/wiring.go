package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/config"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/gateway"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/llm/gemini"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/prompt"
	"github.com/rs/zerolog"
)

const (
	ProviderGroq    = "groq"
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
	ProviderGemini  = "gemini"
)

type Config struct {
	Port      int
	LogLevel  string
	LogFormat string
	Provider  string

	GroqAPIKey    string
	GroqModelID   string
	OpenAIKey     string
	OpenAIModelID string
	AWSRegion     string
	ClaudeModelID string
	GeminiAPIKey  string
	GeminiModelID string

	RedisAddr     string
	RedisPassword string
	Hostname      string
}

type Dependencies struct {
	Gateway   *gateway.Gateway
	LLMClient llm.LLMClient
	Logger    *zerolog.Logger
	Provider  string
}

// LoadConfig reads the environment. Credentials are not checked here; a
// missing key only fails the first completion call.
func LoadConfig() *Config {
	hostname, _ := os.Hostname()

	return &Config{
		Port:      getEnvInt("PORT", 3000),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
		Provider:  getEnv("LLM_PROVIDER", ProviderGroq),

		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqModelID:   getEnv("GROQ_MODEL_ID", "llama3-8b-8192"),
		OpenAIKey:     getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID: getEnv("OPEN_AI_MODEL_ID", "gpt-4o-mini"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModelID: getEnv("GEMINI_MODEL_ID", "gemini-1.5-flash"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		Hostname:      getEnv("HOSTNAME", hostname),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	directives, err := config.LoadDirectivesConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load directives config: %w", err)
	}

	builder, err := prompt.NewBuilder(directives)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompts: %w", err)
	}

	provider := cfg.Provider
	if !isKnownProvider(provider) {
		logger.Warn().Str("provider", provider).Msg("Unknown LLM provider, falling back to groq")
		provider = ProviderGroq
	}

	llmClient, err := createLLMClient(ctx, provider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", provider, err)
	}

	logger.Info().Str("provider", provider).Msg("LLM client ready")

	return &Dependencies{
		Gateway:   gateway.NewGateway(builder, llmClient, logger),
		LLMClient: llmClient,
		Logger:    logger,
		Provider:  provider,
	}, nil
}

// Close releases provider resources that hold connections.
func (d *Dependencies) Close() error {
	if closer, ok := d.LLMClient.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}

	return value
}

func isKnownProvider(provider string) bool {
	switch provider {
	case ProviderGroq, ProviderOpenAI, ProviderBedrock, ProviderGemini:
		return true
	}
	return false
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, "", cfg.OpenAIModelID)
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case ProviderGemini:
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModelID)
	default:
		return gpt.NewClient(cfg.GroqAPIKey, gpt.GroqBaseURL, cfg.GroqModelID)
	}
}
