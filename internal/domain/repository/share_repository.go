package repository

import (
	"context"

	"famhealth/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrShareNotFound is returned when no accepted share grant matches.
var ErrShareNotFound = errors.New("share not found")

// ShareRepository defines read access to profile share grants.
type ShareRepository interface {
	// FindAcceptedShare retrieves the accepted grant for a profile and invitee email.
	// The email is compared case-insensitively.
	FindAcceptedShare(ctx context.Context, profileID, inviteeEmail string) (*entity.ShareGrant, error)
}
