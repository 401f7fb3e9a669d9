package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
)

// Run executes one offline job. Failures are reported with the same fixed
// messages the HTTP surface returns; provider errors never leak.
func Run(ctx context.Context, a Analyzer, job models.Job) models.JobResult {
	start := time.Now()
	result := models.JobResult{
		ID:      job.ID,
		Variant: job.Variant(),
	}

	switch result.Variant {
	case models.VariantCompare:
		comparison, err := a.Compare(ctx, job.AnalysesTexts)
		if err != nil {
			result.Error = FailureMessage(models.VariantCompare, err)
		} else {
			result.Comparison = comparison
		}
	default:
		analysis, err := a.Analyze(ctx, job.Text)
		if err != nil {
			result.Error = FailureMessage(models.VariantSingle, err)
		} else {
			result.Analysis = analysis
		}
	}

	result.Duration = time.Since(start)
	return result
}

// FailureMessage maps a gateway error to the caller facing message.
func FailureMessage(variant models.Variant, err error) string {
	invalid := errors.Is(err, ErrInvalidInput)

	if variant == models.VariantCompare {
		if invalid {
			return models.MsgNotEnoughAnalyses
		}
		return models.MsgCompareFailed
	}

	if invalid {
		return models.MsgTextRequired
	}
	return models.MsgAnalyzeFailed
}
