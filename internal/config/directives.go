package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/povarna/generative-ai-agents/lab-agent/configs"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxTokens = 1024
	DefaultFallback  = "No result"
	maxTemperature   = 2.0
)

// LoadDirectivesConfig reads the directive registry from DIRECTIVES_CONFIG_PATH,
// falling back to the copy embedded in the binary.
func LoadDirectivesConfig() (*DirectivesConfig, error) {
	path := os.Getenv("DIRECTIVES_CONFIG_PATH")
	if path == "" {
		return ParseDirectivesConfig(configs.Directives)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseDirectivesConfig(data)
}

func ParseDirectivesConfig(data []byte) (*DirectivesConfig, error) {
	var cfg DirectivesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults merges default_model into every variant. A zero max_tokens or
// an omitted temperature in a variant override means "inherit".
func applyDefaults(cfg *DirectivesConfig) {
	defaults := &cfg.Directives.DefaultModel
	if defaults.MaxTokens == 0 {
		defaults.MaxTokens = DefaultMaxTokens
	}

	for _, directive := range cfg.Directives.Variants {
		if directive == nil {
			continue
		}

		if directive.Fallback == "" {
			directive.Fallback = DefaultFallback
		}

		if directive.Model == nil {
			model := *defaults
			directive.Model = &model
			continue
		}

		if directive.Model.MaxTokens == 0 {
			directive.Model.MaxTokens = defaults.MaxTokens
		}
		if directive.Model.Temperature == nil && defaults.Temperature != nil {
			temperature := *defaults.Temperature
			directive.Model.Temperature = &temperature
		}
	}
}

func (c *DirectivesConfig) Validate() error {
	if err := validateModel("default_model", c.Directives.DefaultModel); err != nil {
		return err
	}

	known := make(map[string]bool, len(models.Variants))
	for _, variant := range models.Variants {
		known[string(variant)] = true

		directive, ok := c.Directives.Variants[string(variant)]
		if !ok || directive == nil {
			return fmt.Errorf("directive %q not configured", variant)
		}
		if strings.TrimSpace(directive.System) == "" {
			return fmt.Errorf("directive %q: missing system prompt", variant)
		}
		if directive.Model != nil {
			if err := validateModel(string(variant), *directive.Model); err != nil {
				return err
			}
		}
	}

	for name := range c.Directives.Variants {
		if !known[name] {
			return fmt.Errorf("unknown variant %q", name)
		}
	}

	return nil
}

// Directive returns the configuration registered for a variant.
func (c *DirectivesConfig) Directive(variant models.Variant) (*DirectiveConfiguration, bool) {
	directive, ok := c.Directives.Variants[string(variant)]
	if !ok || directive == nil {
		return nil, false
	}
	return directive, true
}

func validateModel(name string, model ModelConfig) error {
	if model.MaxTokens < 0 {
		return fmt.Errorf("%s: negative max_tokens %d", name, model.MaxTokens)
	}
	if t := model.GetTemperature(); t < 0 || t > maxTemperature {
		return fmt.Errorf("%s: invalid temperature %.2f", name, t)
	}
	return nil
}
