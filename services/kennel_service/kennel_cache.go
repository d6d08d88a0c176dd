package kennel_service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sagarikadotcom/canaan-pet-resort/models/kennel_models"
)

const kennelListKey = "kennels:all"

// RedisKennelCache stores the full kennel listing as one JSON value.
type RedisKennelCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisKennelCache(client *redis.Client, ttl time.Duration) *RedisKennelCache {
	return &RedisKennelCache{client: client, ttl: ttl}
}

// Get reports a miss as (nil, false, nil).
func (c *RedisKennelCache) Get(ctx context.Context) ([]kennel_models.Kennel, bool, error) {
	data, err := c.client.Get(ctx, kennelListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var kennels []kennel_models.Kennel
	if err := json.Unmarshal(data, &kennels); err != nil {
		return nil, false, err
	}
	return kennels, true, nil
}

func (c *RedisKennelCache) Set(ctx context.Context, kennels []kennel_models.Kennel) error {
	data, err := json.Marshal(kennels)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, kennelListKey, data, c.ttl).Err()
}
