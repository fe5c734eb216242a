package postgres

import (
	"context"

	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/repository"
	"famhealth/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindSnapshotsByAccount retrieves the account's snapshots filtered by status.
func (repo *subscriptionRepository) FindSnapshotsByAccount(
	ctx context.Context,
	accountID string,
	statuses []entity.SubscriptionStatus,
) ([]*entity.SubscriptionSnapshot, error) {
	var snapshotModels []*model.SubscriptionSnapshotModel

	query := repo.db.WithContext(ctx).Where("account_id = ?", accountID)
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		query = query.Where("status IN ?", values)
	}

	if err := query.Order("created_at DESC").Find(&snapshotModels).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "find subscription snapshots")
	}

	snapshots := make([]*entity.SubscriptionSnapshot, 0, len(snapshotModels))
	for _, snapshotM := range snapshotModels {
		snapshots = append(snapshots, toSnapshotDomain(snapshotM))
	}

	return snapshots, nil
}

// toSnapshotDomain converts a GORM SubscriptionSnapshotModel to a domain SubscriptionSnapshot entity.
func toSnapshotDomain(data *model.SubscriptionSnapshotModel) *entity.SubscriptionSnapshot {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionSnapshot{
		ID:        data.ID,
		AccountID: data.AccountID,
		Status:    entity.SubscriptionStatus(data.Status),
		CreatedAt: data.CreatedAt,
	}
}
