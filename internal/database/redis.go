package database

import (
	"context"

	"general-ledger/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the optional Redis client. It backs the atomic
// entry-number counter; the ledger degrades to a scan-based fallback
// when the connection is unavailable.
func NewRedis(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
