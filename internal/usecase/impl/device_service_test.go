package impl

import (
	"context"
	"testing"
	"time"

	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/repository"
	"famhealth/internal/domain/service"
	mockRepo "famhealth/internal/mocks/repository"
	mockService "famhealth/internal/mocks/service"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	publisher  *mockService.MockEventPublisher
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return deviceServiceFixtures{
		service:    NewDeviceService(deviceRepo, publisher, newDiscardLogger()),
		deviceRepo: deviceRepo,
		publisher:  publisher,
	}
}

func TestDeviceService_ListDevices(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	devices := []*entity.DeviceRegistration{
		registration("U1", "D1", time.Now()),
		registration("U1", "D2", time.Now().Add(-time.Hour)),
	}

	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "U1").Return(devices, nil)

	result, err := fx.service.ListDevices(ctx, "U1")

	require.NoError(t, err)
	assert.Equal(t, devices, result)
}

func TestDeviceService_RevokeDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "D1").Return(registration("U1", "D1", time.Now()), nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, "D1", "U1").Return(nil)
	fx.publisher.EXPECT().
		PublishDeviceEvent(ctx, mock.MatchedBy(func(event *service.DeviceEvent) bool {
			return event.Type == service.DeviceEventRevoked && event.AccountID == "U1" && event.DeviceID == "D1"
		})).
		Return(nil)

	require.NoError(t, fx.service.RevokeDevice(ctx, "U1", "D1"))
}

func TestDeviceService_RevokeDevice_NotOwned(t *testing.T) {
	tests := []struct {
		name   string
		found  *entity.DeviceRegistration
		lookup error
	}{
		{name: "unknown device", lookup: repository.ErrDeviceNotFound},
		{name: "device of another account", found: registration("U2", "D1", time.Now())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()

			fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "D1").Return(tt.found, tt.lookup)

			err := fx.service.RevokeDevice(ctx, "U1", "D1")

			assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
		})
	}
}

func TestDeviceService_RevokeDevice_PublishFailureIsLogged(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "D1").Return(registration("U1", "D1", time.Now()), nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, "D1", "U1").Return(nil)
	fx.publisher.EXPECT().PublishDeviceEvent(ctx, mock.Anything).Return(errors.New("publisher closed"))

	assert.NoError(t, fx.service.RevokeDevice(ctx, "U1", "D1"))
}

func TestDeviceService_RevokeDevice_DeleteFailure(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, "D1").Return(registration("U1", "D1", time.Now()), nil)
	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, "D1", "U1").
		Return(domainerrors.NewStoreError(errors.New("timeout"), "delete device"))

	err := fx.service.RevokeDevice(ctx, "U1", "D1")

	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}

// staleLookupStore answers the ownership lookup with a row that has since moved to
// another account.
type staleLookupStore struct {
	*memDeviceStore
	stale *entity.DeviceRegistration
}

func (s *staleLookupStore) FindDeviceByID(_ context.Context, _ string) (*entity.DeviceRegistration, error) {
	return s.stale, nil
}

func TestDeviceService_RevokeDevice_KeepsRowMovedToAnotherAccount(t *testing.T) {
	store := newMemDeviceStore(registration("U2", "D1", time.Now()))
	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishDeviceEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	svc := NewDeviceService(&staleLookupStore{
		memDeviceStore: store,
		stale:          registration("U1", "D1", time.Now().Add(-time.Hour)),
	}, publisher, newDiscardLogger())

	require.NoError(t, svc.RevokeDevice(context.Background(), "U1", "D1"))

	assert.Equal(t, []string{"D1"}, store.deviceIDs("U2"))
	assert.Empty(t, store.deviceIDs("U1"))
}
