package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/repository"
	"famhealth/internal/domain/service"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListDevices retrieves all registrations owned by the account
func (s *deviceService) ListDevices(ctx context.Context, accountID string) ([]*entity.DeviceRegistration, error) {
	devices, err := s.deviceRepo.FindDevicesByAccount(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by account")
	}

	return devices, nil
}

// RevokeDevice removes one of the account's registrations. A device registered to
// another account is reported as not found.
func (s *deviceService) RevokeDevice(ctx context.Context, accountID, deviceID string) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return errors.Wrap(err, "failed to find device by id")
	}

	if device.AccountID != accountID {
		return domainerrors.ErrDeviceNotFound
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID, accountID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	s.log(ctx).Info("Device revoked",
		slog.String("account_id", accountID),
		slog.String("device_id", deviceID),
	)

	event := &service.DeviceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       service.DeviceEventRevoked,
		AccountID:  accountID,
		DeviceID:   deviceID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishDeviceEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish device event",
			slog.String("type", event.Type),
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
	}

	return nil
}
