package config

// DirectivesConfig is the root of the directive registry YAML document.
type DirectivesConfig struct {
	Directives Directives `yaml:"directives"`
}

type Directives struct {
	DefaultModel ModelConfig                        `yaml:"default_model"`
	Variants     map[string]*DirectiveConfiguration `yaml:"variants"`
}

// ModelConfig holds the sampling parameters sent with every completion call.
// A nil Temperature in a variant inherits default_model's; 0 is a real value.
type ModelConfig struct {
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature"`
}

// GetTemperature returns the configured temperature, or 0 when unset.
func (m *ModelConfig) GetTemperature() float64 {
	if m == nil || m.Temperature == nil {
		return 0
	}
	return *m.Temperature
}

// DirectiveConfiguration is the system directive for one variant.
// Model is populated from DefaultModel by the loader when omitted.
type DirectiveConfiguration struct {
	Description string       `yaml:"description"`
	System      string       `yaml:"system"`
	Fallback    string       `yaml:"fallback"`
	Model       *ModelConfig `yaml:"model"`
}
