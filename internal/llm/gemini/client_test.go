package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
			},
			want: "",
		},
		{
			name: "text parts are joined",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{
						Parts: []genai.Part{genai.Text("### التفسير\n"), genai.Text("ok")},
					},
					FinishReason: genai.FinishReasonStop,
				}},
			},
			want: "### التفسير\nok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractResponse(tt.resp)
			if got.Content != tt.want {
				t.Errorf("extractResponse() content = %q, want %q", got.Content, tt.want)
			}
		})
	}
}

func TestNewClient(t *testing.T) {
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("Expected error for empty model ID")
	}

	c, err := NewClient("key", "gemini-1.5-flash")
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	// closing before first use is a no-op
	if err := c.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}
