package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/gateway/mocks"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"go.uber.org/mock/gomock"
)

func TestRun_Single(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), "report").Return("analysis", nil)

	result := Run(context.Background(), analyzer, models.Job{ID: "job-1", Text: "report"})

	if result.ID != "job-1" || result.Variant != models.VariantSingle {
		t.Errorf("Unexpected result header %+v", result)
	}
	if result.Analysis != "analysis" || result.Failed() {
		t.Errorf("Expected successful analysis, got %+v", result)
	}
}

func TestRun_Compare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Compare(gomock.Any(), []string{"a", "b"}).Return("comparison", nil)

	result := Run(context.Background(), analyzer, models.Job{ID: "job-2", AnalysesTexts: []string{"a", "b"}})

	if result.Variant != models.VariantCompare || result.Comparison != "comparison" {
		t.Errorf("Expected successful comparison, got %+v", result)
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		job     models.Job
		err     error
		wantMsg string
	}{
		{"invalid single", models.Job{ID: "1"}, fmt.Errorf("%w: %w", ErrInvalidInput, models.ErrTextRequired), models.MsgTextRequired},
		{"upstream single", models.Job{ID: "2", Text: "x"}, fmt.Errorf("%w: boom", ErrUpstream), models.MsgAnalyzeFailed},
		{"invalid compare", models.Job{ID: "3", AnalysesTexts: []string{"a"}}, fmt.Errorf("%w: %w", ErrInvalidInput, models.ErrNotEnoughAnalyses), models.MsgNotEnoughAnalyses},
		{"upstream compare", models.Job{ID: "4", AnalysesTexts: []string{"a", "b"}}, errors.New("boom"), models.MsgCompareFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := mocks.NewMockAnalyzer(ctrl)
			analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return("", tt.err).AnyTimes()
			analyzer.EXPECT().Compare(gomock.Any(), gomock.Any()).Return("", tt.err).AnyTimes()

			result := Run(context.Background(), analyzer, tt.job)

			if result.Error != tt.wantMsg {
				t.Errorf("Expected error %q, got %q", tt.wantMsg, result.Error)
			}
			if result.Analysis != "" || result.Comparison != "" {
				t.Errorf("Expected no output on failure, got %+v", result)
			}
		})
	}
}
