package stream

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewStreamConsumer_Errors(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name string
		cfg  *StreamConfig
	}{
		{"unsupported provider", &StreamConfig{Provider: "kafka"}},
		{"missing redis config", &StreamConfig{Provider: ProviderRedis}},
		{"default provider without config", &StreamConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewStreamConsumer(context.Background(), tt.cfg, nil, &logger); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
