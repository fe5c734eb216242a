// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"famhealth/internal/domain/entity"
)

// AccessRequest is what the gate knows about the caller.
type AccessRequest struct {
	Identity *entity.Identity
	DeviceID string
	Metadata *entity.DeviceMetadata
}

// ProfileRequirement asks the gate to check the caller's role on a profile.
type ProfileRequirement struct {
	ID           string
	RequiredRole entity.Role
}

// AccessOptions declares what a route requires.
type AccessOptions struct {
	Public             bool
	RequireDevice      bool
	EnforceDeviceLimit bool
	DeviceLimitFree    int
	Profile            *ProfileRequirement
}

// RequiresDevice reports whether the route needs the device registry check.
func (o AccessOptions) RequiresDevice() bool {
	return o.RequireDevice || o.EnforceDeviceLimit
}

// AccessUsecase is the per-request access gate.
type AccessUsecase interface {
	// Enforce returns the composed outcome or a guard failure from domain errors.
	Enforce(ctx context.Context, req *AccessRequest, opts AccessOptions) (*entity.AccessOutcome, error)
}
