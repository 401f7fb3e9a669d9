package main

import (
	"github.com/povarna/generative-ai-agents/lab-agent/internal/batch"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
)

func validateJob(record batch.InputRecord) error {
	if record.Job.Variant() == models.VariantCompare {
		return models.CompareRequest{AnalysesTexts: record.Job.AnalysesTexts}.Validate()
	}
	return models.AnalysisRequest{Text: record.Job.Text}.Validate()
}
