package redis

const (
	DefaultRequestStream = "lab-analysis-requests"
	DefaultGroup         = "lab-analysis-group"
	DefaultReplyStream   = "lab-analysis-results"
	DefaultReplyMaxLen   = 10000
)

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	Stream        string
	Group         string
	ConsumerName  string
	ReplyStream   string
	ReplyMaxLen   int64
}

// NewRedisStreamConfig uses the default stream, group and reply stream names.
func NewRedisStreamConfig(redisAddr string, redisPassword string, consumerName string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		Stream:        DefaultRequestStream,
		Group:         DefaultGroup,
		ConsumerName:  consumerName,
		ReplyStream:   DefaultReplyStream,
		ReplyMaxLen:   DefaultReplyMaxLen,
	}
}
