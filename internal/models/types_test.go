package models

import (
	"errors"
	"testing"
)

func TestAnalysisRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"empty text", "", ErrTextRequired},
		{"whitespace is accepted", "  ", nil},
		{"report text", "Hemoglobin 10.2 g/dL", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AnalysisRequest{Text: tt.text}.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompareRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		texts   []string
		wantErr error
	}{
		{"nil", nil, ErrNotEnoughAnalyses},
		{"empty", []string{}, ErrNotEnoughAnalyses},
		{"one analysis", []string{"a"}, ErrNotEnoughAnalyses},
		{"two analyses", []string{"a", "b"}, nil},
		{"three analyses", []string{"a", "b", "c"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareRequest{AnalysesTexts: tt.texts}.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestJob_Variant(t *testing.T) {
	if v := (Job{Text: "x"}).Variant(); v != VariantSingle {
		t.Errorf("Expected single variant, got %s", v)
	}
	if v := (Job{AnalysesTexts: []string{"a"}}).Variant(); v != VariantCompare {
		t.Errorf("Expected compare variant, got %s", v)
	}
	if v := (Job{Text: "x", AnalysesTexts: []string{"a", "b"}}).Variant(); v != VariantCompare {
		t.Errorf("Expected analysesTexts to take precedence, got %s", v)
	}
}
