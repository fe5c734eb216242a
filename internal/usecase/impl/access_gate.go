package impl

import (
	"context"
	"log/slog"

	"famhealth/config"
	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// accessGate implements the AccessUsecase interface.
type accessGate struct {
	subscriptions usecase.SubscriptionUsecase
	enforcer      usecase.DeviceEnforcer
	roles         usecase.RoleResolver
	gateStatuses  []entity.SubscriptionStatus
	logger        *slog.Logger
}

// AccessGateParams holds dependencies for the access gate, injected by Fx
type AccessGateParams struct {
	fx.In

	Subscriptions usecase.SubscriptionUsecase
	Enforcer      usecase.DeviceEnforcer
	Roles         usecase.RoleResolver
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAccessGate is the constructor for accessGate.
func NewAccessGate(params AccessGateParams) usecase.AccessUsecase {
	return &accessGate{
		subscriptions: params.Subscriptions,
		enforcer:      params.Enforcer,
		roles:         params.Roles,
		gateStatuses:  entity.SubscriptionStatusesFromStrings(params.Config.Subscription.GateStatuses),
		logger:        params.Logger,
	}
}

func (srv *accessGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enforce runs the route's access checks in order and returns the composed outcome.
func (srv *accessGate) Enforce(ctx context.Context, req *usecase.AccessRequest, opts usecase.AccessOptions) (*entity.AccessOutcome, error) {
	if opts.Public {
		srv.log(ctx).Error("Access gate invoked for a public route")

		return nil, domainerrors.ErrPublicEnforcement
	}

	if req == nil || req.Identity == nil || !req.Identity.Valid() {
		return nil, domainerrors.ErrUnauthorized
	}

	if opts.RequiresDevice() && req.DeviceID == "" {
		return nil, domainerrors.ErrDeviceRequired
	}

	accountID := req.Identity.AccountID

	var (
		subscribed    bool
		registrations []*entity.DeviceRegistration
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		subscribed, err = srv.subscriptions.IsSubscribed(groupCtx, accountID, srv.gateStatuses)

		return errors.Wrap(err, "failed to resolve subscription status")
	})
	if opts.RequiresDevice() {
		group.Go(func() error {
			var err error
			registrations, err = srv.enforcer.Registrations(groupCtx, accountID)

			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	outcome := &entity.AccessOutcome{
		Identity:   *req.Identity,
		Subscribed: subscribed,
	}

	if opts.RequiresDevice() {
		check, err := srv.checkDevice(ctx, req, opts, subscribed, registrations)
		if err != nil {
			return nil, err
		}
		outcome.Device = check
	}

	if opts.Profile != nil && opts.Profile.ID != "" && opts.Profile.RequiredRole != "" {
		access, err := srv.checkProfile(ctx, req.Identity, opts.Profile)
		if err != nil {
			return nil, err
		}
		outcome.Profile = access
	}

	return outcome, nil
}

func (srv *accessGate) checkDevice(
	ctx context.Context,
	req *usecase.AccessRequest,
	opts usecase.AccessOptions,
	subscribed bool,
	registrations []*entity.DeviceRegistration,
) (*entity.DeviceCheck, error) {
	if registrations == nil {
		registrations = []*entity.DeviceRegistration{}
	}

	decision, err := srv.enforcer.Refresh(ctx, &usecase.EnforceDeviceInput{
		AccountID:     req.Identity.AccountID,
		DeviceID:      req.DeviceID,
		Subscribed:    subscribed,
		Limit:         opts.DeviceLimitFree,
		Metadata:      req.Metadata,
		Registrations: registrations,
	})
	if err != nil {
		return nil, err
	}

	if !decision.Registered {
		srv.log(ctx).Info("Device not registered for account",
			slog.String("account_id", req.Identity.AccountID),
			slog.String("device_id", req.DeviceID),
			slog.Bool("limit_applied", decision.LimitApplied),
		)

		if decision.LimitApplied {
			return nil, domainerrors.ErrDeviceLimitExceeded
		}

		return nil, domainerrors.ErrDeviceNotRegistered
	}

	if !decision.Allowed {
		return nil, domainerrors.ErrForbidden
	}

	return &entity.DeviceCheck{
		DeviceID:     req.DeviceID,
		Registered:   decision.Registered,
		Allowed:      decision.Allowed,
		LimitApplied: decision.LimitApplied,
	}, nil
}

func (srv *accessGate) checkProfile(ctx context.Context, identity *entity.Identity, requirement *usecase.ProfileRequirement) (*entity.ProfileAccess, error) {
	decision, err := srv.roles.Resolve(ctx, identity.AccountID, identity.Email, requirement.ID, requirement.RequiredRole)
	if err != nil {
		return nil, err
	}

	if !decision.Allowed {
		srv.log(ctx).Info("Insufficient profile role",
			slog.String("account_id", identity.AccountID),
			slog.String("profile_id", requirement.ID),
			slog.String("required_role", requirement.RequiredRole.String()),
		)

		return nil, domainerrors.ErrForbidden.WithDetails("insufficient role on profile")
	}

	return &entity.ProfileAccess{
		ProfileID:    requirement.ID,
		RequiredRole: requirement.RequiredRole,
		Owner:        decision.Owner,
	}, nil
}
