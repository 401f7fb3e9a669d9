package gpt

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/llm"
	"github.com/sashabaranov/go-openai"
)

// GroqBaseURL is Groq's OpenAI compatible endpoint.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// Client talks to any OpenAI compatible chat completion API.
type Client struct {
	client  *openai.Client
	ModelID string
}

// NewClient builds a client for baseURL, or for OpenAI itself when baseURL is
// empty. A missing key is not an error here; the provider rejects the call.
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if model == "" {
		return nil, fmt.Errorf("model ID is required")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &Client{
		client:  openai.NewClientWithConfig(cfg),
		ModelID: model,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.ModelID,
		Messages: buildMessages(request),
	}

	// reasoning models take MaxCompletionTokens and reject a custom temperature
	if isReasoningModel(c.ModelID) {
		req.MaxCompletionTokens = request.MaxTokens
	} else {
		req.MaxTokens = request.MaxTokens
		req.Temperature = float32(request.Temperature)
		// the field is omitempty, so a plain 0 would never be sent
		if req.Temperature == 0 {
			req.Temperature = math.SmallestNonzeroFloat32
		}
	}

	output, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke model %s: %w", c.ModelID, err)
	}

	if len(output.Choices) == 0 {
		return &llm.LLMResponse{}, nil
	}

	choice := output.Choices[0]
	return &llm.LLMResponse{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
	}, nil
}

func buildMessages(request llm.LLMRequest) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if request.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: request.SystemPrompt,
		})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: request.Prompt,
	})
}

func isReasoningModel(model string) bool {
	for _, prefix := range []string{"o1", "o3", "o4", "gpt-5"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
