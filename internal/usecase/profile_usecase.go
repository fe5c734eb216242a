package usecase

import (
	"context"

	"famhealth/internal/domain/entity"
)

// RoleDecision is the outcome of a profile role check.
type RoleDecision struct {
	Allowed bool
	Owner   bool
	Granted entity.ShareRole // Role of the accepted share grant, empty for owners and strangers.
}

// RoleResolver decides whether an account holds at least a given role on a profile.
type RoleResolver interface {
	Resolve(ctx context.Context, accountID, accountEmail, profileID string, required entity.Role) (*RoleDecision, error)
}
