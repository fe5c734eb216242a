package repository

import (
	"context"

	"famhealth/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile does not exist.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines read access to profile ownership.
type ProfileRepository interface {
	// FindProfileOwner retrieves the profile with its owning account.
	FindProfileOwner(ctx context.Context, profileID string) (*entity.Profile, error)
}
