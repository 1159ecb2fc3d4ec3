package redis

import (
	"context"
	"fmt"

	"food-delivery/internal/pkg/config"
	"food-delivery/pkg/logger"
	"food-delivery/pkg/retrier"
	"food-delivery/pkg/retrier/backoff_adapter"

	goredis "github.com/redis/go-redis/v9"
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	var attempt uint64
	err := backoff_adapter.New(retrier.ConnectConfig()).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		redisLog.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Redis connection")

		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		redisLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Redis connection failed after retries")
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	redisLog.Info("Redis connection established")
	return client, nil
}
