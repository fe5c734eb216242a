package cache

import (
	"context"
	"time"

	"famhealth/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	subscribedValue    = "1"
	notSubscribedValue = "0"
)

// redisStatusCache stores the subscribed flag as "1" or "0" under the caller's key.
type redisStatusCache struct {
	client redis.Cmdable
}

// NewRedisStatusCache wraps a Redis client.
func NewRedisStatusCache(client redis.Cmdable) service.SubscriptionStatusCache {
	return &redisStatusCache{client: client}
}

// Get returns the cached flag or service.ErrCacheMiss.
func (c *redisStatusCache) Get(ctx context.Context, key string) (bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, service.ErrCacheMiss
		}

		return false, errors.Wrapf(err, "cache get %s", key)
	}

	switch value {
	case subscribedValue:
		return true, nil
	case notSubscribedValue:
		return false, nil
	default:
		// Unknown encodings are treated as absent and overwritten on the next Set.
		return false, service.ErrCacheMiss
	}
}

// Set stores the flag for ttl.
func (c *redisStatusCache) Set(ctx context.Context, key string, subscribed bool, ttl time.Duration) error {
	value := notSubscribedValue
	if subscribed {
		value = subscribedValue
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "cache set %s", key)
	}

	return nil
}
