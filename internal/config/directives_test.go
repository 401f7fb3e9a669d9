package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
)

const validDirectives = `directives:
  default_model:
    max_tokens: 512
    temperature: 0.3

  variants:
    single:
      description: "Explain one report"
      system: |
        Explain the report in Arabic.
      model:
        max_tokens: 256

    compare:
      description: "Compare reports"
      fallback: "Nothing to compare"
      system: |
        Compare the reports in Arabic.
`

func TestLoadDirectivesConfig_FromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "directives.yaml")

	if err := os.WriteFile(configPath, []byte(validDirectives), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("DIRECTIVES_CONFIG_PATH", configPath)

	cfg, err := LoadDirectivesConfig()
	if err != nil {
		t.Fatalf("LoadDirectivesConfig() failed: %v", err)
	}

	if cfg.Directives.DefaultModel.MaxTokens != 512 {
		t.Errorf("Expected default max_tokens=512, got %d", cfg.Directives.DefaultModel.MaxTokens)
	}

	single, ok := cfg.Directive(models.VariantSingle)
	if !ok {
		t.Fatal("Expected single directive to be configured")
	}
	if single.Model.MaxTokens != 256 {
		t.Errorf("Expected single max_tokens=256, got %d", single.Model.MaxTokens)
	}
	// temperature inherited from default_model
	if got := single.Model.GetTemperature(); got != 0.3 {
		t.Errorf("Expected single temperature=0.3, got %f", got)
	}
	if single.Fallback != DefaultFallback {
		t.Errorf("Expected default fallback, got %q", single.Fallback)
	}

	compare, _ := cfg.Directive(models.VariantCompare)
	if compare.Model == nil || compare.Model.MaxTokens != 512 {
		t.Errorf("Expected compare to inherit default model, got %+v", compare.Model)
	}
	if compare.Fallback != "Nothing to compare" {
		t.Errorf("Expected custom fallback, got %q", compare.Fallback)
	}
}

func TestLoadDirectivesConfig_Embedded(t *testing.T) {
	t.Setenv("DIRECTIVES_CONFIG_PATH", "")

	cfg, err := LoadDirectivesConfig()
	if err != nil {
		t.Fatalf("LoadDirectivesConfig() failed: %v", err)
	}

	for _, variant := range models.Variants {
		directive, ok := cfg.Directive(variant)
		if !ok {
			t.Fatalf("Expected %s directive in embedded config", variant)
		}
		if !strings.Contains(directive.System, "###") {
			t.Errorf("Expected %s directive to name its headings", variant)
		}
	}

	compare, _ := cfg.Directive(models.VariantCompare)
	if compare.Model.MaxTokens != 1536 {
		t.Errorf("Expected compare max_tokens=1536, got %d", compare.Model.MaxTokens)
	}
}

func TestLoadDirectivesConfig_FileNotFound(t *testing.T) {
	t.Setenv("DIRECTIVES_CONFIG_PATH", "/nonexistent/directives.yaml")

	_, err := LoadDirectivesConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestParseDirectivesConfig_InvalidYAML(t *testing.T) {
	_, err := ParseDirectivesConfig([]byte("directives: [unclosed"))
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestParseDirectivesConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing compare variant",
			content: `directives:
  variants:
    single:
      system: "x"
`,
			wantErr: `directive "compare" not configured`,
		},
		{
			name: "empty system prompt",
			content: `directives:
  variants:
    single:
      system: "  "
    compare:
      system: "x"
`,
			wantErr: `directive "single": missing system prompt`,
		},
		{
			name: "unknown variant",
			content: `directives:
  variants:
    single:
      system: "x"
    compare:
      system: "y"
    summary:
      system: "z"
`,
			wantErr: `unknown variant "summary"`,
		},
		{
			name: "temperature out of range",
			content: `directives:
  default_model:
    temperature: 3.5
  variants:
    single:
      system: "x"
    compare:
      system: "y"
`,
			wantErr: "invalid temperature",
		},
		{
			name: "negative max tokens",
			content: `directives:
  variants:
    single:
      system: "x"
      model:
        max_tokens: -1
    compare:
      system: "y"
`,
			wantErr: "negative max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirectivesConfig([]byte(tt.content))
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyDefaults_MaxTokens(t *testing.T) {
	cfg := &DirectivesConfig{
		Directives: Directives{
			Variants: map[string]*DirectiveConfiguration{
				"single": {System: "x"},
			},
		},
	}

	applyDefaults(cfg)

	if cfg.Directives.DefaultModel.MaxTokens != DefaultMaxTokens {
		t.Errorf("Expected default max_tokens=%d, got %d", DefaultMaxTokens, cfg.Directives.DefaultModel.MaxTokens)
	}
	if cfg.Directives.Variants["single"].Model.MaxTokens != DefaultMaxTokens {
		t.Errorf("Expected variant to inherit max_tokens=%d", DefaultMaxTokens)
	}
}

func TestParseDirectivesConfig_ZeroTemperature(t *testing.T) {
	content := `directives:
  default_model:
    temperature: 0.7
  variants:
    single:
      system: "x"
      model:
        temperature: 0
    compare:
      system: "y"
      model:
        max_tokens: 2048
`
	cfg, err := ParseDirectivesConfig([]byte(content))
	if err != nil {
		t.Fatalf("ParseDirectivesConfig() failed: %v", err)
	}

	single, _ := cfg.Directive(models.VariantSingle)
	if single.Model.Temperature == nil || *single.Model.Temperature != 0 {
		t.Errorf("Expected explicit temperature 0 to be kept, got %v", single.Model.Temperature)
	}

	compare, _ := cfg.Directive(models.VariantCompare)
	if got := compare.Model.GetTemperature(); got != 0.7 {
		t.Errorf("Expected omitted temperature to inherit 0.7, got %f", got)
	}
	if compare.Model.MaxTokens != 2048 {
		t.Errorf("Expected compare max_tokens=2048, got %d", compare.Model.MaxTokens)
	}
}

func TestModelConfig_GetTemperature(t *testing.T) {
	var unset *ModelConfig
	if got := unset.GetTemperature(); got != 0 {
		t.Errorf("Expected 0 for nil config, got %f", got)
	}
	if got := (&ModelConfig{}).GetTemperature(); got != 0 {
		t.Errorf("Expected 0 for omitted temperature, got %f", got)
	}
}
