package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

// Connect returns a pinged client, or nil when no address is configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("rdb.Ping: %w", err)
	}

	return rdb, nil
}
