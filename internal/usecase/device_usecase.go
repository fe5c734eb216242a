package usecase

import (
	"context"

	"famhealth/internal/domain/entity"
)

// EnforceDeviceInput carries everything the device registry policy needs for one decision.
type EnforceDeviceInput struct {
	AccountID     string
	DeviceID      string
	Subscribed    bool
	AllowEviction bool                   // Only honoured by Register.
	Limit         int                    // Free-tier limit; zero or less means the configured default.
	Metadata      *entity.DeviceMetadata // Merged into the stored row; empty fields are ignored.

	// Registrations is the account's current registrations when the caller already fetched
	// them. Nil means the enforcer queries the store itself.
	Registrations []*entity.DeviceRegistration
}

// DeviceDecision is the device registry's verdict.
type DeviceDecision struct {
	Registered   bool
	Allowed      bool
	LimitApplied bool
	Evicted      []string // Device ids removed to make room, Register only.
	Transferred  bool     // The device id was taken over from another account, Register only.
}

// DeviceEnforcer applies the free-tier device limit.
type DeviceEnforcer interface {
	// Register may create the registration and, when AllowEviction is set, evict the
	// account's other devices to stay within the limit. Used only at sign-in.
	Register(ctx context.Context, input *EnforceDeviceInput) (*DeviceDecision, error)

	// Refresh never creates a registration; it only advances last-seen of an existing one.
	Refresh(ctx context.Context, input *EnforceDeviceInput) (*DeviceDecision, error)

	// Registrations returns the account's registrations for callers that prefetch them.
	Registrations(ctx context.Context, accountID string) ([]*entity.DeviceRegistration, error)
}

// DeviceUsecase defines user-initiated device management.
type DeviceUsecase interface {
	// ListDevices returns the account's registrations, most recently seen first.
	ListDevices(ctx context.Context, accountID string) ([]*entity.DeviceRegistration, error)

	// RevokeDevice removes one of the account's own registrations.
	RevokeDevice(ctx context.Context, accountID, deviceID string) error
}
