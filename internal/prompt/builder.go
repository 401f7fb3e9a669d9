package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/config"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Prompt is a fully assembled completion request for one variant.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
	Fallback    string
}

type Builder struct {
	directives map[models.Variant]*config.DirectiveConfiguration
}

func NewBuilder(cfg *config.DirectivesConfig) (*Builder, error) {
	if cfg == nil {
		return nil, errors.New("directives config is required")
	}

	directives := make(map[models.Variant]*config.DirectiveConfiguration, len(models.Variants))
	for _, variant := range models.Variants {
		directive, ok := cfg.Directive(variant)
		if !ok {
			return nil, fmt.Errorf("directive %q not configured", variant)
		}
		directives[variant] = directive
	}

	return &Builder{directives: directives}, nil
}

// Build pairs the variant's system directive with the user turn.
// Single expects exactly one report; compare expects at least two.
func (b *Builder) Build(variant models.Variant, inputs []string) (Prompt, error) {
	if _, ok := b.directives[variant]; !ok {
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	var user string
	switch variant {
	case models.VariantSingle:
		if len(inputs) != 1 || inputs[0] == "" {
			return Prompt{}, models.ErrTextRequired
		}
		user = inputs[0]
	case models.VariantCompare:
		if len(inputs) < models.MinAnalysesForCompare {
			return Prompt{}, models.ErrNotEnoughAnalyses
		}
		user = JoinAnalyses(inputs)
	}

	p, err := b.Params(variant)
	if err != nil {
		return Prompt{}, err
	}
	p.User = user
	return p, nil
}

// Params returns the model parameters and fallback text of a variant
// without assembling a prompt.
func (b *Builder) Params(variant models.Variant) (Prompt, error) {
	directive, ok := b.directives[variant]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	p := Prompt{System: directive.System, Fallback: directive.Fallback}
	if directive.Model != nil {
		p.MaxTokens = directive.Model.MaxTokens
		p.Temperature = directive.Model.GetTemperature()
	}
	return p, nil
}

// JoinAnalyses numbers each report from 1 in the order given, so the model
// can tell older reports from newer ones.
func JoinAnalyses(texts []string) string {
	blocks := make([]string, len(texts))
	for i, text := range texts {
		blocks[i] = fmt.Sprintf("--- Analysis %d ---\n%s", i+1, text)
	}
	return strings.Join(blocks, "\n\n")
}
