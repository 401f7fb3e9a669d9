package stream

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/gateway"
	red "github.com/povarna/generative-ai-agents/lab-agent/internal/redis"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/stream/redis"
	"github.com/rs/zerolog"
)

const connectAttempts = 5

func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	analyzer gateway.Analyzer,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = ProviderRedis
	}

	switch provider {
	case ProviderRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			connectAttempts,
			logger,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, analyzer, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
