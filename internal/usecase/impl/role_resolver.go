package impl

import (
	"context"
	"log/slog"

	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	"famhealth/internal/domain/repository"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
)

type roleResolver struct {
	profileRepo repository.ProfileRepository
	shareRepo   repository.ShareRepository
	logger      *slog.Logger
}

// NewRoleResolver creates a new profile role resolver
func NewRoleResolver(
	profileRepo repository.ProfileRepository,
	shareRepo repository.ShareRepository,
	logger *slog.Logger,
) usecase.RoleResolver {
	return &roleResolver{
		profileRepo: profileRepo,
		shareRepo:   shareRepo,
		logger:      logger,
	}
}

func (srv *roleResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve grants any role to the profile's owner, and otherwise compares the required
// role with the caller's accepted share grant. An unknown profile is denied.
func (srv *roleResolver) Resolve(
	ctx context.Context,
	accountID, accountEmail, profileID string,
	required entity.Role,
) (*usecase.RoleDecision, error) {
	profile, err := srv.profileRepo.FindProfileOwner(ctx, profileID)
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		srv.log(ctx).Debug("Profile not found during role resolution", slog.String("profile_id", profileID))
	case err != nil:
		return nil, errors.Wrap(err, "failed to find profile owner")
	case profile.OwnerAccountID == accountID:
		return &usecase.RoleDecision{Allowed: true, Owner: true}, nil
	}

	if required == entity.RoleOwner {
		return &usecase.RoleDecision{}, nil
	}

	email := entity.NormalizeEmail(accountEmail)
	if email == "" {
		return &usecase.RoleDecision{}, nil
	}

	grant, err := srv.shareRepo.FindAcceptedShare(ctx, profileID, email)
	if err != nil {
		if errors.Is(err, repository.ErrShareNotFound) {
			return &usecase.RoleDecision{}, nil
		}

		return nil, errors.Wrap(err, "failed to find accepted share")
	}

	return &usecase.RoleDecision{
		Allowed: required.SatisfiedByShare(grant.Role),
		Granted: grant.Role,
	}, nil
}
