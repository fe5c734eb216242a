package usecase

import (
	"context"

	"famhealth/internal/domain/entity"
)

// SubscriptionUsecase answers whether an account is on a paid tier.
type SubscriptionUsecase interface {
	// IsSubscribed reports whether any snapshot has one of statuses, using the cache when warm.
	IsSubscribed(ctx context.Context, accountID string, statuses []entity.SubscriptionStatus) (bool, error)

	// RefreshStatus reads the store, bypassing the cache, and overwrites the cached value.
	RefreshStatus(ctx context.Context, accountID string, statuses []entity.SubscriptionStatus) (bool, error)
}
