package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/prompt"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUpstream     = errors.New("completion provider failed")
)

// Analyzer explains lab reports. Implemented by Gateway; consumed by the
// HTTP handlers, the MCP tools, the batch runner and the stream worker.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
	Compare(ctx context.Context, analysesTexts []string) (string, error)
}

// PromptBuilder assembles the system directive and user turn for a variant.
type PromptBuilder interface {
	Build(variant models.Variant, inputs []string) (prompt.Prompt, error)
}

type Gateway struct {
	builder   PromptBuilder
	llmClient llm.LLMClient
	logger    *zerolog.Logger
}

func NewGateway(builder PromptBuilder, llmClient llm.LLMClient, logger *zerolog.Logger) *Gateway {
	return &Gateway{
		builder:   builder,
		llmClient: llmClient,
		logger:    logger,
	}
}

func (g *Gateway) Analyze(ctx context.Context, text string) (string, error) {
	return g.complete(ctx, models.VariantSingle, []string{text})
}

func (g *Gateway) Compare(ctx context.Context, analysesTexts []string) (string, error) {
	return g.complete(ctx, models.VariantCompare, analysesTexts)
}

// complete makes exactly one provider call. An empty completion is replaced
// by the directive's fallback text.
func (g *Gateway) complete(ctx context.Context, variant models.Variant, inputs []string) (string, error) {
	p, err := g.builder.Build(variant, inputs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	start := time.Now()
	resp, err := g.llmClient.InvokeModel(ctx, llm.LLMRequest{
		SystemPrompt: p.System,
		Prompt:       p.User,
		MaxTokens:    p.MaxTokens,
		Temperature:  p.Temperature,
	})
	if err != nil {
		g.logger.Error().
			Err(err).
			Str("variant", string(variant)).
			Dur("duration", time.Since(start)).
			Msg("completion failed")
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if resp == nil || resp.Content == "" {
		g.logger.Warn().
			Str("variant", string(variant)).
			Msg("empty completion, using fallback")
		return p.Fallback, nil
	}

	g.logger.Debug().
		Str("variant", string(variant)).
		Str("stopReason", resp.StopReason).
		Dur("duration", time.Since(start)).
		Msg("completion received")

	return resp.Content, nil
}
