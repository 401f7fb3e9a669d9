package mcpadapter

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/gateway"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
)

const (
	AnalyzeToolName = "analyze_lab_report"
	CompareToolName = "compare_lab_reports"
)

// AnalyzeInput is the MCP tool input schema (matches HTTP API field names).
type AnalyzeInput struct {
	Text string `json:"text" jsonschema:"raw lab report text"`
}

// CompareInput is the MCP tool input schema for comparing reports.
type CompareInput struct {
	AnalysesTexts []string `json:"analysesTexts" jsonschema:"two or more lab report texts, oldest first"`
}

// RegisterTools adds both lab report tools to server.
func RegisterTools(server *mcp.Server, analyzer gateway.Analyzer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        AnalyzeToolName,
		Description: "Explain a single medical lab report in plain Arabic with general recommendations",
	}, NewAnalyzeHandler(analyzer))

	mcp.AddTool(server, &mcp.Tool{
		Name:        CompareToolName,
		Description: "Compare two or more medical lab reports in Arabic and describe the changes between them",
	}, NewCompareHandler(analyzer))
}

// NewAnalyzeHandler returns a tool handler that uses the given analyzer.
// Pass the returned function to mcp.AddTool.
func NewAnalyzeHandler(analyzer gateway.Analyzer) func(context.Context, *mcp.CallToolRequest, AnalyzeInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, models.AnalysisResult, error) {
		if input.Text == "" {
			return nil, models.AnalysisResult{}, errors.New(models.MsgTextRequired)
		}

		analysis, err := analyzer.Analyze(ctx, input.Text)
		if err != nil {
			return nil, models.AnalysisResult{}, errors.New(gateway.FailureMessage(models.VariantSingle, err))
		}

		return nil, models.AnalysisResult{Analysis: analysis}, nil
	}
}

// NewCompareHandler returns a tool handler for report comparison.
// Pass the returned function to mcp.AddTool.
func NewCompareHandler(analyzer gateway.Analyzer) func(context.Context, *mcp.CallToolRequest, CompareInput) (*mcp.CallToolResult, models.ComparisonResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (*mcp.CallToolResult, models.ComparisonResult, error) {
		if len(input.AnalysesTexts) < models.MinAnalysesForCompare {
			return nil, models.ComparisonResult{}, errors.New(models.MsgNotEnoughAnalyses)
		}

		comparison, err := analyzer.Compare(ctx, input.AnalysesTexts)
		if err != nil {
			return nil, models.ComparisonResult{}, errors.New(gateway.FailureMessage(models.VariantCompare, err))
		}

		return nil, models.ComparisonResult{Comparison: comparison}, nil
	}
}
