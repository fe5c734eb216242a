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

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfileOwner retrieves the profile with its owning account.
func (repo *profileRepository) FindProfileOwner(ctx context.Context, profileID string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Select("id", "owner_account_id").
		Where("id = ?", profileID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewStoreError(err, "find profile owner")
	}

	return &entity.Profile{
		ID:             profileM.ID,
		OwnerAccountID: profileM.OwnerAccountID,
	}, nil
}
