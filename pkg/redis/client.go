package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DrekStyler/handypro-api/config"
)

// New creates a Redis client for rate limiting, or nil when Redis is not
// configured. Callers must treat a nil client as "fall back to in-memory".
func New(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}

	return client
}
