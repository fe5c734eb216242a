package postgres

import (
	"context"

	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/repository"
	"famhealth/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shareRepository implements the repository.ShareRepository interface.
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(db *gorm.DB) repository.ShareRepository {
	return &shareRepository{
		db: db,
	}
}

// FindAcceptedShare retrieves the accepted grant for a profile and invitee email.
func (repo *shareRepository) FindAcceptedShare(ctx context.Context, profileID, inviteeEmail string) (*entity.ShareGrant, error) {
	var shareM model.ProfileShareModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND LOWER(invitee_email) = ? AND status = ?",
			profileID, entity.NormalizeEmail(inviteeEmail), string(entity.ShareStatusAccepted)).
		Order("updated_at DESC").
		First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareNotFound
		}

		return nil, domainerrors.NewStoreError(err, "find accepted share")
	}

	return toShareDomain(&shareM), nil
}

// toShareDomain converts a GORM ProfileShareModel to a domain ShareGrant entity.
func toShareDomain(data *model.ProfileShareModel) *entity.ShareGrant {
	if data == nil {
		return nil
	}

	return &entity.ShareGrant{
		ID:               data.ID,
		ProfileID:        data.ProfileID,
		OwnerAccountID:   data.OwnerAccountID,
		OwnerEmail:       data.OwnerEmail,
		InviteeEmail:     data.InviteeEmail,
		InviteeAccountID: data.InviteeAccountID,
		Role:             entity.ShareRole(data.Role),
		Status:           entity.ShareStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
