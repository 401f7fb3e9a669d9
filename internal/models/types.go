package models

import (
	"errors"
	"time"
)

// Variant selects the prompt and response shape.
type Variant string

const (
	VariantSingle  Variant = "single"
	VariantCompare Variant = "compare"
)

// Variants lists every variant a directive registry must define.
var Variants = []Variant{VariantSingle, VariantCompare}

// Messages returned to callers. Provider errors are never relayed.
const (
	MsgTextRequired       = "Text is required"
	MsgAnalyzeFailed      = "Failed to analyze text"
	MsgNotEnoughAnalyses  = "Please provide at least two analyses to compare."
	MsgCompareFailed      = "Failed to get comparison"
	MsgInternalError      = "Internal server error"
	MinAnalysesForCompare = 2
)

var (
	ErrTextRequired      = errors.New("text is required")
	ErrNotEnoughAnalyses = errors.New("at least two analyses are required")
)

// Input messages

type AnalysisRequest struct {
	Text string `json:"text" description:"Raw lab report text"`
}

func (r AnalysisRequest) Validate() error {
	if r.Text == "" {
		return ErrTextRequired
	}
	return nil
}

type CompareRequest struct {
	AnalysesTexts []string `json:"analysesTexts" description:"Two or more lab report texts, oldest first"`
}

func (r CompareRequest) Validate() error {
	if len(r.AnalysesTexts) < MinAnalysesForCompare {
		return ErrNotEnoughAnalyses
	}
	return nil
}

// Output messages

type AnalysisResult struct {
	Analysis string `json:"analysis" description:"Model generated explanation in Arabic"`
}

type ComparisonResult struct {
	Comparison string `json:"comparison" description:"Model generated comparison in Arabic"`
}

// Job is one unit of offline work, read from a batch file or a stream.
// AnalysesTexts takes precedence over Text when present.
type Job struct {
	ID            string   `json:"id"`
	Text          string   `json:"text,omitempty"`
	AnalysesTexts []string `json:"analysesTexts,omitempty"`
}

func (j Job) Variant() Variant {
	if len(j.AnalysesTexts) > 0 {
		return VariantCompare
	}
	return VariantSingle
}

type JobResult struct {
	ID         string        `json:"id"`
	Variant    Variant       `json:"variant"`
	Analysis   string        `json:"analysis,omitempty"`
	Comparison string        `json:"comparison,omitempty"`
	Error      string        `json:"error,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}

func (r JobResult) Failed() bool {
	return r.Error != ""
}
