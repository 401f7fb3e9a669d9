package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Summary is written once, at Close, in summary format.
type Summary struct {
	Total           int            `json:"total"`
	Succeeded       int            `json:"succeeded"`
	Failed          int            `json:"failed"`
	ByVariant       map[string]int `json:"by_variant"`
	TotalDuration   time.Duration  `json:"total_duration_ns"`
	AverageDuration time.Duration  `json:"average_duration_ns"`
}

type Writer struct {
	enc     *json.Encoder
	format  string
	summary Summary
	logger  *zerolog.Logger
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return &Writer{
		enc:     enc,
		format:  format,
		summary: Summary{ByVariant: make(map[string]int)},
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result models.JobResult) error {
	w.summary.Total++
	w.summary.ByVariant[string(result.Variant)]++
	w.summary.TotalDuration += result.Duration
	if result.Failed() {
		w.summary.Failed++
	} else {
		w.summary.Succeeded++
	}

	if w.format != FormatJSONL {
		return nil
	}

	if err := w.enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result %s: %w", result.ID, err)
	}
	return nil
}

func (w *Writer) Summary() Summary {
	s := w.summary
	if s.Total > 0 {
		s.AverageDuration = s.TotalDuration / time.Duration(s.Total)
	}
	return s
}

func (w *Writer) Close() error {
	s := w.Summary()

	w.logger.Info().
		Int("total", s.Total).
		Int("succeeded", s.Succeeded).
		Int("failed", s.Failed).
		Msg("Batch results")

	if w.format != FormatSummary {
		return nil
	}

	if err := w.enc.Encode(s); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
