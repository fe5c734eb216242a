package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when a cached value is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// SubscriptionStatusCache stores the derived "is subscribed" flag per account and status filter.
type SubscriptionStatusCache interface {
	// Get returns the cached flag or ErrCacheMiss.
	Get(ctx context.Context, key string) (bool, error)

	// Set stores the flag for ttl.
	Set(ctx context.Context, key string, subscribed bool, ttl time.Duration) error
}
