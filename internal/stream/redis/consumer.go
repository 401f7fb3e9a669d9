package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/lab-agent/internal/gateway"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	FieldPayload   = "payload"
	FieldRequestID = "request_id"
)

// Request is the JSON carried in the payload field of a request entry.
type Request struct {
	RequestID     string   `json:"request_id,omitempty"`
	Text          string   `json:"text,omitempty"`
	AnalysesTexts []string `json:"analysesTexts,omitempty"`
}

type Consumer struct {
	client   *redis.Client
	cfg      *RedisStreamConfig
	analyzer gateway.Analyzer
	logger   *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, analyzer gateway.Analyzer, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:   client,
		cfg:      cfg,
		analyzer: analyzer,
		logger:   logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group %s: %w", c.cfg.Group, err)
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.cfg.Stream).
		Str("group", c.cfg.Group).
		Str("consumer", c.cfg.ConsumerName).
		Str("replyStream", c.cfg.ReplyStream).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.cfg.Group,
			Consumer: c.cfg.ConsumerName,
			Streams:  []string{c.cfg.Stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

// process runs the gateway once per message. Every message is acked, including
// undecodable ones, and every message gets a reply.
func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, _ := msg.Values[FieldPayload].(string)
	result := c.handlePayload(ctx, msg.ID, payload)

	c.logger.Info().
		Str("id", msg.ID).
		Str("requestID", result.ID).
		Str("variant", string(result.Variant)).
		Bool("failed", result.Failed()).
		Dur("duration", result.Duration).
		Msg("Message processed")

	if err := c.reply(ctx, result); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish reply")
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) handlePayload(ctx context.Context, msgID, payload string) models.JobResult {
	if payload == "" {
		return models.JobResult{ID: msgID, Error: "missing payload field"}
	}

	var req Request
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.logger.Warn().Err(err).Str("id", msgID).Msg("Failed to decode message")
		return models.JobResult{ID: msgID, Error: "invalid payload"}
	}

	job := models.Job{
		ID:            req.RequestID,
		Text:          req.Text,
		AnalysesTexts: req.AnalysesTexts,
	}
	if job.ID == "" {
		job.ID = msgID
	}

	return gateway.Run(ctx, c.analyzer, job)
}

func (c *Consumer) reply(ctx context.Context, result models.JobResult) error {
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode reply: %w", err)
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.cfg.ReplyStream,
		MaxLen: c.cfg.ReplyMaxLen,
		Approx: true,
		Values: map[string]any{
			FieldRequestID: result.ID,
			FieldPayload:   string(body),
		},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
