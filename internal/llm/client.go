package llm

import (
	"context"
)

// LLMClient is an interface for invoking completion models.
// A call is made exactly once; callers decide what a failure means.
type LLMClient interface {
	InvokeModel(ctx context.Context, request LLMRequest) (*LLMResponse, error)
}
