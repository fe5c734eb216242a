// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"famhealth/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device registration is not found,
	// including when a conditional refresh matched no row.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDeviceOwnedByAnotherAccount is returned when an upsert hits a row owned by a
	// different account. Ownership only changes through an explicit delete.
	ErrDeviceOwnedByAnotherAccount = errors.New("device owned by another account")
)

// DeviceRepository defines the interface for device registry operations.
type DeviceRepository interface {
	// FindDevicesByAccount retrieves every registration owned by an account.
	FindDevicesByAccount(ctx context.Context, accountID string) ([]*entity.DeviceRegistration, error)

	// FindDeviceByID retrieves a registration by device id regardless of owner.
	FindDeviceByID(ctx context.Context, deviceID string) (*entity.DeviceRegistration, error)

	// UpsertDevice creates the registration or, if the device id exists for the same account,
	// advances last-seen and merges non-empty metadata fields. Returns
	// ErrDeviceOwnedByAnotherAccount when the existing row belongs to another account.
	UpsertDevice(ctx context.Context, device *entity.DeviceRegistration) error

	// RefreshDevice advances last-seen, and merges non-empty metadata fields, only if a row
	// for (deviceID, accountID) still exists. Returns ErrDeviceNotFound when no row matched.
	RefreshDevice(ctx context.Context, deviceID, accountID string, seenAt time.Time, metadata *entity.DeviceMetadata) error

	// DeleteDevice removes the registration only if it belongs to accountID.
	// Deleting a missing or foreign row is not an error.
	DeleteDevice(ctx context.Context, deviceID, accountID string) error
}
