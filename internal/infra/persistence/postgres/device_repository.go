// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/repository"
	"famhealth/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// deviceRepository implements the repository.DeviceRepository interface.
// Every statement is pinned to the primary so a refresh never reads a lagging replica.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func (repo *deviceRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// FindDevicesByAccount retrieves every registration owned by an account, most recently seen first.
func (repo *deviceRepository) FindDevicesByAccount(ctx context.Context, accountID string) ([]*entity.DeviceRegistration, error) {
	var deviceModels []*model.DeviceRegistrationModel

	if err := repo.primary(ctx).
		Where("account_id = ?", accountID).
		Order("last_seen_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, domainerrors.NewStoreError(err, "find devices by account")
	}

	devices := make([]*entity.DeviceRegistration, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// FindDeviceByID retrieves a registration by device id regardless of owner.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, deviceID string) (*entity.DeviceRegistration, error) {
	var deviceM model.DeviceRegistrationModel

	if err := repo.primary(ctx).
		Where("device_id = ?", deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, domainerrors.NewStoreError(err, "find device by id")
	}

	return toDeviceDomain(&deviceM), nil
}

// UpsertDevice inserts the registration or merges it into the existing row for the device id.
// Last-seen only moves forward and metadata is merged key by key. The conflict update is
// guarded by the owner, so a row of another account is left untouched.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.DeviceRegistration) error {
	deviceM := fromDeviceDomain(device)

	result := repo.primary(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "device_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"last_seen_at": gorm.Expr("GREATEST(device_registrations.last_seen_at, EXCLUDED.last_seen_at)"),
				"metadata":     gorm.Expr("device_registrations.metadata || EXCLUDED.metadata"),
				"updated_at":   gorm.Expr("EXCLUDED.updated_at"),
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "device_registrations.account_id = EXCLUDED.account_id"},
			}},
		}).
		Create(deviceM)
	if result.Error != nil {
		if isConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid device registration")
		}

		return domainerrors.NewStoreError(result.Error, "upsert device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceOwnedByAnotherAccount
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// RefreshDevice advances last-seen only if the row still exists for the account.
func (repo *deviceRepository) RefreshDevice(
	ctx context.Context,
	deviceID, accountID string,
	seenAt time.Time,
	metadata *entity.DeviceMetadata,
) error {
	updates := map[string]any{
		"last_seen_at": gorm.Expr("GREATEST(last_seen_at, ?)", seenAt),
		"updated_at":   seenAt,
	}

	if !metadata.IsEmpty() {
		patch, err := json.Marshal(model.DeviceMetadataModel(*metadata))
		if err != nil {
			return errors.Wrap(err, "failed to encode device metadata")
		}
		updates["metadata"] = gorm.Expr("metadata || ?::jsonb", string(patch))
	}

	result := repo.primary(ctx).
		Model(&model.DeviceRegistrationModel{}).
		Where("device_id = ? AND account_id = ?", deviceID, accountID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewStoreError(result.Error, "refresh device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes the account's registration. A missing or foreign row is not an error.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, deviceID, accountID string) error {
	if err := repo.primary(ctx).
		Where("device_id = ? AND account_id = ?", deviceID, accountID).
		Delete(&model.DeviceRegistrationModel{}).Error; err != nil {
		return domainerrors.NewStoreError(err, "delete device")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceRegistrationModel to a domain DeviceRegistration entity.
func toDeviceDomain(data *model.DeviceRegistrationModel) *entity.DeviceRegistration {
	if data == nil {
		return nil
	}

	device := &entity.DeviceRegistration{
		DeviceID:   data.DeviceID,
		AccountID:  data.AccountID,
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Metadata != nil {
		metadata := entity.DeviceMetadata(*data.Metadata)
		if !metadata.IsEmpty() {
			device.Metadata = &metadata
		}
	}

	return device
}

// fromDeviceDomain converts a domain DeviceRegistration entity to a GORM DeviceRegistrationModel.
// Metadata is always non-nil so the stored column stays a JSON object.
func fromDeviceDomain(data *entity.DeviceRegistration) *model.DeviceRegistrationModel {
	if data == nil {
		return nil
	}

	metadata := model.DeviceMetadataModel{}
	if data.Metadata != nil {
		metadata = model.DeviceMetadataModel(*data.Metadata)
	}

	return &model.DeviceRegistrationModel{
		DeviceID:   data.DeviceID,
		AccountID:  data.AccountID,
		LastSeenAt: data.LastSeenAt,
		Metadata:   &metadata,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
