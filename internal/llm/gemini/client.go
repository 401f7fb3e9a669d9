package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/llm"
	"google.golang.org/api/option"
)

// Client wraps the Gemini SDK. The underlying connection is opened on the
// first call so that wiring never dials out.
type Client struct {
	apiKey  string
	ModelID string

	mu     sync.Mutex
	client *genai.Client
}

func NewClient(apiKey, modelID string) (*Client, error) {
	if modelID == "" {
		return nil, fmt.Errorf("gemini model ID is required")
	}
	return &Client{apiKey: apiKey, ModelID: modelID}, nil
}

func (c *Client) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("unable to create gemini client: %w", err)
	}
	c.client = client
	return client, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	client, err := c.sdk(ctx)
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(c.ModelID)
	if request.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(request.SystemPrompt)},
		}
	}
	model.SetTemperature(float32(request.Temperature))
	if request.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(request.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(request.Prompt))
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gemini model %s: %w", c.ModelID, err)
	}

	return extractResponse(resp), nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}

// extractResponse joins the text parts of the first candidate.
func extractResponse(resp *genai.GenerateContentResponse) *llm.LLMResponse {
	if resp == nil || len(resp.Candidates) == 0 {
		return &llm.LLMResponse{}
	}

	candidate := resp.Candidates[0]
	out := &llm.LLMResponse{StopReason: candidate.FinishReason.String()}
	if candidate.Content == nil {
		return out
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	out.Content = sb.String()
	return out
}
