package repository

import (
	"context"

	"famhealth/internal/domain/entity"
)

// SubscriptionRepository defines read access to subscription snapshots.
type SubscriptionRepository interface {
	// FindSnapshotsByAccount retrieves the account's snapshots whose status is in statuses.
	// An empty statuses filter matches every status.
	FindSnapshotsByAccount(ctx context.Context, accountID string, statuses []entity.SubscriptionStatus) ([]*entity.SubscriptionSnapshot, error)
}
