package pubsub

import (
	"context"
	"encoding/json"

	"sidomulyo-storefront/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisSubscriber delivers events over redis pub/sub. Each payload is a
// JSON-encoded Message published on the topic channel.
type RedisSubscriber struct {
	client *redis.Client
}

func NewRedisSubscriber(client *redis.Client) *RedisSubscriber {
	return &RedisSubscriber{client: client}
}

func (s *RedisSubscriber) Subscribe(ctx context.Context, topic string, h Handler) (UnsubscribeFunc, error) {
	ps := s.client.Subscribe(ctx, topic)

	// Fail fast if the subscription could not be established.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	log := logger.FromCtx(ctx).With(zap.String("topic", topic))
	log.Info("subscribed to redis channel")

	go func() {
		for raw := range ps.Channel() {
			var msg Message
			if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				log.Warn("dropping undecodable event", zap.Error(err))
				continue
			}
			h(msg)
		}
	}()

	return func() {
		if err := ps.Close(); err != nil {
			log.Warn("failed to close redis subscription", zap.Error(err))
		}
	}, nil
}
