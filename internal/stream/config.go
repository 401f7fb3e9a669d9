package stream

import "github.com/povarna/generative-ai-agents/lab-agent/internal/stream/redis"

const ProviderRedis = "redis"

type StreamConfig struct {
	Provider    string // redis is the only provider today
	RedisConfig *redis.RedisStreamConfig
}
