// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"famhealth/config"
	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/repository"
	"famhealth/internal/domain/service"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// enforcementPolicy selects which registry mutations a call site may perform.
type enforcementPolicy struct {
	allowCreate   bool
	allowEviction bool
}

// deviceEnforcer implements the DeviceEnforcer interface.
// Cross-request coordination relies on the store's conditional writes only; concurrent
// first sign-ins may briefly exceed the limit until the next sign-in evicts.
type deviceEnforcer struct {
	deviceRepo        repository.DeviceRepository
	txManager         repository.TransactionManager
	publisher         service.EventPublisher
	logger            *slog.Logger
	freeLimit         int
	ownershipConflict string
	now               func() time.Time
}

// DeviceEnforcerParams holds dependencies for the device enforcer, injected by Fx
type DeviceEnforcerParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	TxManager  repository.TransactionManager
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDeviceEnforcer is the constructor for deviceEnforcer.
func NewDeviceEnforcer(params DeviceEnforcerParams) usecase.DeviceEnforcer {
	return &deviceEnforcer{
		deviceRepo:        params.DeviceRepo,
		txManager:         params.TxManager,
		publisher:         params.Publisher,
		logger:            params.Logger,
		freeLimit:         params.Config.Device.FreeLimit,
		ownershipConflict: params.Config.Device.OwnershipConflict,
		now:               time.Now,
	}
}

func (srv *deviceEnforcer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register applies the sign-in policy: the device may be created and, with eviction
// allowed, the account's other devices are removed to respect the limit.
func (srv *deviceEnforcer) Register(ctx context.Context, input *usecase.EnforceDeviceInput) (*usecase.DeviceDecision, error) {
	return srv.enforce(ctx, enforcementPolicy{allowCreate: true, allowEviction: input.AllowEviction}, input)
}

// Refresh applies the steady-state policy: nothing is created or deleted.
func (srv *deviceEnforcer) Refresh(ctx context.Context, input *usecase.EnforceDeviceInput) (*usecase.DeviceDecision, error) {
	return srv.enforce(ctx, enforcementPolicy{}, input)
}

// Registrations returns the account's registrations.
func (srv *deviceEnforcer) Registrations(ctx context.Context, accountID string) ([]*entity.DeviceRegistration, error) {
	devices, err := srv.deviceRepo.FindDevicesByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by account")
	}

	return devices, nil
}

func (srv *deviceEnforcer) enforce(
	ctx context.Context,
	policy enforcementPolicy,
	input *usecase.EnforceDeviceInput,
) (*usecase.DeviceDecision, error) {
	devices := input.Registrations
	if devices == nil {
		var err error
		if devices, err = srv.Registrations(ctx, input.AccountID); err != nil {
			return nil, err
		}
	}

	registered, others := partitionDevices(devices, input.DeviceID)
	overLimit := !input.Subscribed && len(others) >= srv.limit(input.Limit)

	if !policy.allowCreate {
		if !registered {
			return &usecase.DeviceDecision{LimitApplied: overLimit}, nil
		}

		return srv.refresh(ctx, input, overLimit)
	}

	if registered {
		// Already admitted devices are never subject to the limit at sign-in.
		if err := srv.upsert(ctx, srv.deviceRepo, input); err != nil {
			return nil, err
		}

		return &usecase.DeviceDecision{Registered: true, Allowed: true}, nil
	}

	return srv.admit(ctx, policy, input, others, overLimit)
}

func (srv *deviceEnforcer) refresh(ctx context.Context, input *usecase.EnforceDeviceInput, overLimit bool) (*usecase.DeviceDecision, error) {
	err := srv.deviceRepo.RefreshDevice(ctx, input.DeviceID, input.AccountID, srv.now().UTC(), input.Metadata)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			// Evicted between the query and the update.
			srv.log(ctx).Info("Device registration vanished during refresh",
				slog.String("account_id", input.AccountID),
				slog.String("device_id", input.DeviceID),
			)

			return &usecase.DeviceDecision{}, nil
		}

		return nil, errors.Wrap(err, "failed to refresh device")
	}

	return &usecase.DeviceDecision{Registered: true, Allowed: true, LimitApplied: overLimit}, nil
}

// admit registers a device the account has not used before.
func (srv *deviceEnforcer) admit(
	ctx context.Context,
	policy enforcementPolicy,
	input *usecase.EnforceDeviceInput,
	others []*entity.DeviceRegistration,
	overLimit bool,
) (*usecase.DeviceDecision, error) {
	transfer, err := srv.checkOwnership(ctx, input)
	if err != nil {
		return nil, err
	}

	if overLimit && !policy.allowEviction {
		srv.log(ctx).Info("Device limit reached",
			slog.String("account_id", input.AccountID),
			slog.String("device_id", input.DeviceID),
			slog.Int("registered", len(others)),
		)

		return nil, domainerrors.ErrDeviceLimitExceeded
	}

	var evicted []string
	if overLimit {
		evicted = make([]string, 0, len(others))
		for _, device := range others {
			evicted = append(evicted, device.DeviceID)
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.DeviceRepo()

		for _, deviceID := range evicted {
			if err := deviceRepo.DeleteDevice(ctx, deviceID, input.AccountID); err != nil {
				return errors.Wrapf(err, "failed to evict device %s", deviceID)
			}
		}

		if transfer != nil {
			if err := deviceRepo.DeleteDevice(ctx, transfer.DeviceID, transfer.AccountID); err != nil {
				return errors.Wrap(err, "failed to release device from previous account")
			}
		}

		return srv.upsert(ctx, deviceRepo, input)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute device registration transaction")
	}

	srv.announce(ctx, input, evicted, transfer)

	return &usecase.DeviceDecision{
		Registered:   true,
		Allowed:      true,
		LimitApplied: overLimit,
		Evicted:      evicted,
		Transferred:  transfer != nil,
	}, nil
}

// checkOwnership returns the foreign registration to take over, or a conflict error.
// A device id owned by another account is never taken over silently.
func (srv *deviceEnforcer) checkOwnership(ctx context.Context, input *usecase.EnforceDeviceInput) (*entity.DeviceRegistration, error) {
	existing, err := srv.deviceRepo.FindDeviceByID(ctx, input.DeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	if existing.AccountID == input.AccountID {
		return nil, nil
	}

	if srv.ownershipConflict != config.OwnershipConflictTransfer {
		srv.log(ctx).Warn("Device registered to another account",
			slog.String("account_id", input.AccountID),
			slog.String("device_id", input.DeviceID),
		)

		return nil, domainerrors.ErrDeviceOwnedByAnotherAccount
	}

	srv.log(ctx).Warn("Transferring device from another account",
		slog.String("account_id", input.AccountID),
		slog.String("previous_account_id", existing.AccountID),
		slog.String("device_id", input.DeviceID),
	)

	return existing, nil
}

func (srv *deviceEnforcer) upsert(ctx context.Context, deviceRepo repository.DeviceRepository, input *usecase.EnforceDeviceInput) error {
	now := srv.now().UTC()

	if err := deviceRepo.UpsertDevice(ctx, &entity.DeviceRegistration{
		DeviceID:   input.DeviceID,
		AccountID:  input.AccountID,
		LastSeenAt: now,
		Metadata:   input.Metadata,
		UpdatedAt:  now,
	}); err != nil {
		if errors.Is(err, repository.ErrDeviceOwnedByAnotherAccount) {
			// Claimed by another account after the ownership check.
			srv.log(ctx).Warn("Device registered to another account",
				slog.String("account_id", input.AccountID),
				slog.String("device_id", input.DeviceID),
			)

			return domainerrors.ErrDeviceOwnedByAnotherAccount
		}

		return errors.Wrap(err, "failed to upsert device")
	}

	return nil
}

// announce publishes device events after commit. Publishing is best effort: the
// registry change has already happened and must not be reported as a failed sign-in.
func (srv *deviceEnforcer) announce(
	ctx context.Context,
	input *usecase.EnforceDeviceInput,
	evicted []string,
	transfer *entity.DeviceRegistration,
) {
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	now := srv.now().UTC()

	events := make([]*service.DeviceEvent, 0, len(evicted)+1)
	for _, deviceID := range evicted {
		events = append(events, &service.DeviceEvent{
			RequestID:     requestID,
			Type:          service.DeviceEventEvicted,
			AccountID:     input.AccountID,
			DeviceID:      deviceID,
			CauseDeviceID: input.DeviceID,
			OccurredAt:    now,
		})
	}
	if transfer != nil {
		events = append(events, &service.DeviceEvent{
			RequestID:     requestID,
			Type:          service.DeviceEventTransferred,
			AccountID:     transfer.AccountID,
			DeviceID:      transfer.DeviceID,
			CauseDeviceID: input.DeviceID,
			OccurredAt:    now,
		})
	}

	for _, event := range events {
		if err := srv.publisher.PublishDeviceEvent(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish device event",
				slog.String("type", event.Type),
				slog.String("device_id", event.DeviceID),
				slog.Any("error", err),
			)
		}
	}

	if len(evicted) > 0 {
		srv.log(ctx).Info("Evicted devices to admit new device",
			slog.String("account_id", input.AccountID),
			slog.String("device_id", input.DeviceID),
			slog.Any("evicted", evicted),
		)
	}
}

func (srv *deviceEnforcer) limit(requested int) int {
	if requested > 0 {
		return requested
	}

	return srv.freeLimit
}

// partitionDevices reports whether deviceID is among devices and returns the rest.
func partitionDevices(devices []*entity.DeviceRegistration, deviceID string) (bool, []*entity.DeviceRegistration) {
	registered := false
	others := make([]*entity.DeviceRegistration, 0, len(devices))

	for _, device := range devices {
		if device.DeviceID == deviceID {
			registered = true

			continue
		}
		others = append(others, device)
	}

	return registered, others
}
