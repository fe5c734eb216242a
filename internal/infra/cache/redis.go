// Package cache provides the Redis-backed subscription status cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"famhealth/config"
	"famhealth/internal/domain/lifecycle"
	"famhealth/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the status cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSubscriptionStatusCache returns a Redis cache when redis is configured and a
// cache that always misses otherwise.
func NewSubscriptionStatusCache(params Params) service.SubscriptionStatusCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, subscription status is read from the store on every request")

		return noopStatusCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

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
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStatusCache(client)
}

type noopStatusCache struct{}

func (noopStatusCache) Get(context.Context, string) (bool, error) {
	return false, service.ErrCacheMiss
}

func (noopStatusCache) Set(context.Context, string, bool, time.Duration) error {
	return nil
}
