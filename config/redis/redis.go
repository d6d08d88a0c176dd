package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sagarikadotcom/canaan-pet-resort/logger"
)

// ErrNotConfigured is returned by Connect when no REDIS_URL is set.
var ErrNotConfigured = errors.New("redis not configured")

// Connect returns a client for redisURL. It returns ErrNotConfigured when
// redisURL is empty. Redis is optional: the kennel cache and rate limiter
// fall back without it.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	if redisURL == "" {
		return nil, ErrNotConfigured
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.InfoLogger.Info("Connected to Redis")
	return client, nil
}

func Close(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.ErrorLogger.Errorf("Error closing Redis connection: %v", err)
		return
	}
	logger.InfoLogger.Info("Redis connection closed")
}
