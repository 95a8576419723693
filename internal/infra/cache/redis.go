// Package cache provides the shared Redis client.
package cache

import (
	"context"
	"log/slog"

	"nagarsetu/config"
	"nagarsetu/internal/domain/lifecycle"
	"nagarsetu/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient builds the Redis client from config. It returns nil when
// Redis is not configured; callers treat that as "no cache".
func NewRedisClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || (cfg.URL == "" && cfg.Addr == "") {
		params.Logger.Info("Redis not configured, geocode cache disabled")

		return nil, nil
	}

	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func clientOptions(cfg *config.RedisConfig) (*redis.Options, error) {
	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}

		return opts, nil
	}

	return &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, nil
}
