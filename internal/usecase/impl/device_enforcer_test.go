package impl

import (
	"context"
	"testing"
	"time"

	"famhealth/config"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/service"
	mockService "famhealth/internal/mocks/service"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var enforcerBaseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// deviceEnforcerFixtures holds all test dependencies for device enforcer tests.
type deviceEnforcerFixtures struct {
	enforcer  *deviceEnforcer
	store     *memDeviceStore
	publisher *mockService.MockEventPublisher
}

func createTestDeviceEnforcer(t *testing.T, cfg *config.Config, devices ...*entity.DeviceRegistration) deviceEnforcerFixtures {
	store := newMemDeviceStore(devices...)
	publisher := mockService.NewMockEventPublisher(t)

	enforcer := NewDeviceEnforcer(DeviceEnforcerParams{
		DeviceRepo: store,
		TxManager:  &memTxManager{store: store},
		Publisher:  publisher,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}).(*deviceEnforcer)
	enforcer.now = func() time.Time { return enforcerBaseTime }

	return deviceEnforcerFixtures{
		enforcer:  enforcer,
		store:     store,
		publisher: publisher,
	}
}

func registration(accountID, deviceID string, lastSeen time.Time) *entity.DeviceRegistration {
	return &entity.DeviceRegistration{
		DeviceID:   deviceID,
		AccountID:  accountID,
		LastSeenAt: lastSeen,
	}
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(event *service.DeviceEvent) bool {
		return event.Type == eventType
	})
}

func TestDeviceEnforcer_Register_LimitExceededWithoutEviction(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U1", "D1", enforcerBaseTime))

	decision, err := fx.enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
		AccountID: "U1",
		DeviceID:  "D2",
	})

	require.Error(t, err)
	assert.Nil(t, decision)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceLimitExceeded)
	assert.Equal(t, []string{"D1"}, fx.store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Register_SubscribedNeverHitsLimit(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U1", "D1", enforcerBaseTime))
	ctx := context.Background()

	for _, deviceID := range []string{"D2", "D3"} {
		decision, err := fx.enforcer.Register(ctx, &usecase.EnforceDeviceInput{
			AccountID:  "U1",
			DeviceID:   deviceID,
			Subscribed: true,
		})

		require.NoError(t, err)
		assert.True(t, decision.Registered)
		assert.True(t, decision.Allowed)
		assert.False(t, decision.LimitApplied)
		assert.Empty(t, decision.Evicted)
	}

	assert.Equal(t, []string{"D1", "D2", "D3"}, fx.store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Register_EvictionLeavesOnlyNewDevice(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1),
		registration("U1", "D1", enforcerBaseTime.Add(-2*time.Hour)),
		registration("U1", "D2", enforcerBaseTime.Add(-time.Hour)),
		registration("U2", "D9", enforcerBaseTime),
	)

	fx.publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, eventOfType(service.DeviceEventEvicted)).
		Return(nil).
		Times(2)

	decision, err := fx.enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
		AccountID:     "U1",
		DeviceID:      "D3",
		AllowEviction: true,
		Metadata:      &entity.DeviceMetadata{OSName: "iOS"},
	})

	require.NoError(t, err)
	assert.True(t, decision.Registered)
	assert.True(t, decision.Allowed)
	assert.True(t, decision.LimitApplied)
	assert.ElementsMatch(t, []string{"D1", "D2"}, decision.Evicted)
	assert.Equal(t, []string{"D3"}, fx.store.deviceIDs("U1"))
	assert.Equal(t, []string{"D9"}, fx.store.deviceIDs("U2"))

	stored, err := fx.store.FindDeviceByID(context.Background(), "D3")
	require.NoError(t, err)
	assert.Equal(t, "iOS", stored.Metadata.OSName)
	assert.Equal(t, enforcerBaseTime, stored.LastSeenAt)
}

func TestDeviceEnforcer_Register_ExistingDeviceSkipsLimit(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1),
		&entity.DeviceRegistration{
			DeviceID:   "D1",
			AccountID:  "U1",
			LastSeenAt: enforcerBaseTime.Add(-time.Hour),
			Metadata:   &entity.DeviceMetadata{OSName: "Android", Locale: "en-US"},
		},
		registration("U1", "D2", enforcerBaseTime.Add(-time.Hour)),
	)

	decision, err := fx.enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
		AccountID: "U1",
		DeviceID:  "D1",
		Metadata:  &entity.DeviceMetadata{OSVersion: "15"},
	})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.False(t, decision.LimitApplied)
	assert.Empty(t, decision.Evicted)
	assert.Equal(t, []string{"D1", "D2"}, fx.store.deviceIDs("U1"))

	stored, err := fx.store.FindDeviceByID(context.Background(), "D1")
	require.NoError(t, err)
	assert.Equal(t, &entity.DeviceMetadata{OSName: "Android", OSVersion: "15", Locale: "en-US"}, stored.Metadata)
}

func TestDeviceEnforcer_Register_UsesRequestedLimit(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U1", "D1", enforcerBaseTime))

	decision, err := fx.enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
		AccountID: "U1",
		DeviceID:  "D2",
		Limit:     2,
	})

	require.NoError(t, err)
	assert.False(t, decision.LimitApplied)
	assert.Equal(t, []string{"D1", "D2"}, fx.store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Register_OwnershipConflict(t *testing.T) {
	tests := []struct {
		name          string
		policy        string
		wantErr       error
		wantOwner     string
		wantPublished bool
	}{
		{
			name:      "reject keeps the other account's registration",
			policy:    config.OwnershipConflictReject,
			wantErr:   domainerrors.ErrDeviceOwnedByAnotherAccount,
			wantOwner: "U2",
		},
		{
			name:          "transfer moves the device and announces it",
			policy:        config.OwnershipConflictTransfer,
			wantOwner:     "U1",
			wantPublished: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(1)
			cfg.Device.OwnershipConflict = tt.policy
			fx := createTestDeviceEnforcer(t, cfg, registration("U2", "D1", enforcerBaseTime.Add(-time.Hour)))

			if tt.wantPublished {
				fx.publisher.EXPECT().
					PublishDeviceEvent(mock.Anything, mock.MatchedBy(func(event *service.DeviceEvent) bool {
						return event.Type == service.DeviceEventTransferred && event.AccountID == "U2" && event.DeviceID == "D1"
					})).
					Return(nil).
					Once()
			}

			decision, err := fx.enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
				AccountID: "U1",
				DeviceID:  "D1",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, decision)
			} else {
				require.NoError(t, err)
				assert.True(t, decision.Transferred)
				assert.True(t, decision.Allowed)
			}

			stored, err := fx.store.FindDeviceByID(context.Background(), "D1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, stored.AccountID)
		})
	}
}

// claimAfterLookupStore lets another account register the device right after the
// ownership lookup, the way a concurrent sign-in on a second connection would.
type claimAfterLookupStore struct {
	*memDeviceStore
	t     *testing.T
	claim *entity.DeviceRegistration
}

func (s *claimAfterLookupStore) FindDeviceByID(ctx context.Context, deviceID string) (*entity.DeviceRegistration, error) {
	device, err := s.memDeviceStore.FindDeviceByID(ctx, deviceID)
	if s.claim != nil && s.claim.DeviceID == deviceID {
		require.NoError(s.t, s.memDeviceStore.UpsertDevice(ctx, s.claim))
		s.claim = nil
	}

	return device, err
}

func TestDeviceEnforcer_Register_ConcurrentClaimIsRejected(t *testing.T) {
	store := newMemDeviceStore(registration("U1", "D1", enforcerBaseTime.Add(-time.Hour)))
	cfg := newTestConfig(1)
	cfg.Device.OwnershipConflict = config.OwnershipConflictReject

	enforcer := NewDeviceEnforcer(DeviceEnforcerParams{
		DeviceRepo: &claimAfterLookupStore{
			memDeviceStore: store,
			t:              t,
			claim:          registration("U2", "D2", enforcerBaseTime),
		},
		TxManager: &memTxManager{store: store},
		Publisher: mockService.NewMockEventPublisher(t),
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*deviceEnforcer)
	enforcer.now = func() time.Time { return enforcerBaseTime }

	decision, err := enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
		AccountID:     "U1",
		DeviceID:      "D2",
		AllowEviction: true,
	})

	require.Error(t, err)
	assert.Nil(t, decision)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnedByAnotherAccount)

	stored, err := store.FindDeviceByID(context.Background(), "D2")
	require.NoError(t, err)
	assert.Equal(t, "U2", stored.AccountID)
	// The eviction rolled back with the failed registration.
	assert.Equal(t, []string{"D1"}, store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Register_FailedUpsertKeepsEvictedDevices(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U1", "D1", enforcerBaseTime))
	fx.store.failOn["UpsertDevice"] = domainerrors.NewStoreError(errors.New("connection reset"), "upsert device")

	decision, err := fx.enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
		AccountID:     "U1",
		DeviceID:      "D2",
		AllowEviction: true,
	})

	require.Error(t, err)
	assert.Nil(t, decision)
	assert.True(t, domainerrors.IsStoreError(err))
	assert.Equal(t, []string{"D1"}, fx.store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Register_PublishFailureDoesNotFailSignIn(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U1", "D1", enforcerBaseTime))

	fx.publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, eventOfType(service.DeviceEventEvicted)).
		Return(errors.New("topic not found")).
		Once()

	decision, err := fx.enforcer.Register(context.Background(), &usecase.EnforceDeviceInput{
		AccountID:     "U1",
		DeviceID:      "D2",
		AllowEviction: true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"D1"}, decision.Evicted)
	assert.Equal(t, []string{"D2"}, fx.store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Refresh_NeverCreatesRegistration(t *testing.T) {
	tests := []struct {
		name             string
		devices          []*entity.DeviceRegistration
		subscribed       bool
		wantLimitApplied bool
	}{
		{name: "no devices at all"},
		{
			name:             "other device fills the free slot",
			devices:          []*entity.DeviceRegistration{registration("U1", "D2", enforcerBaseTime)},
			wantLimitApplied: true,
		},
		{
			name:       "subscribed account",
			devices:    []*entity.DeviceRegistration{registration("U1", "D2", enforcerBaseTime)},
			subscribed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceEnforcer(t, newTestConfig(1), tt.devices...)
			before := fx.store.deviceIDs("U1")

			decision, err := fx.enforcer.Refresh(context.Background(), &usecase.EnforceDeviceInput{
				AccountID:  "U1",
				DeviceID:   "D1",
				Subscribed: tt.subscribed,
			})

			require.NoError(t, err)
			assert.False(t, decision.Registered)
			assert.False(t, decision.Allowed)
			assert.Equal(t, tt.wantLimitApplied, decision.LimitApplied)
			assert.Equal(t, before, fx.store.deviceIDs("U1"))
		})
	}
}

func TestDeviceEnforcer_Refresh_IgnoresEvictionFlag(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U1", "D2", enforcerBaseTime))

	decision, err := fx.enforcer.Refresh(context.Background(), &usecase.EnforceDeviceInput{
		AccountID:     "U1",
		DeviceID:      "D1",
		AllowEviction: true,
	})

	require.NoError(t, err)
	assert.False(t, decision.Registered)
	assert.Empty(t, decision.Evicted)
	assert.Equal(t, []string{"D2"}, fx.store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Refresh_LastSeenNeverMovesBackwards(t *testing.T) {
	seen := enforcerBaseTime.Add(10 * time.Minute)
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U1", "D1", seen))
	ctx := context.Background()

	clock := []time.Time{
		enforcerBaseTime.Add(time.Minute),
		enforcerBaseTime.Add(20 * time.Minute),
		enforcerBaseTime.Add(15 * time.Minute),
	}
	want := []time.Time{
		seen,
		enforcerBaseTime.Add(20 * time.Minute),
		enforcerBaseTime.Add(20 * time.Minute),
	}

	for i, now := range clock {
		fx.enforcer.now = func() time.Time { return now }

		decision, err := fx.enforcer.Refresh(ctx, &usecase.EnforceDeviceInput{AccountID: "U1", DeviceID: "D1"})
		require.NoError(t, err)
		assert.True(t, decision.Registered)
		assert.True(t, decision.Allowed)
		assert.False(t, decision.LimitApplied)

		devices, err := fx.store.FindDevicesByAccount(ctx, "U1")
		require.NoError(t, err)
		require.Len(t, devices, 1)
		assert.Equal(t, want[i], devices[0].LastSeenAt)
	}
}

func TestDeviceEnforcer_Refresh_RowVanishedAfterQuery(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1))

	decision, err := fx.enforcer.Refresh(context.Background(), &usecase.EnforceDeviceInput{
		AccountID:     "U1",
		DeviceID:      "D1",
		Registrations: []*entity.DeviceRegistration{registration("U1", "D1", enforcerBaseTime)},
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.DeviceDecision{}, decision)
	assert.Empty(t, fx.store.deviceIDs("U1"))
}

func TestDeviceEnforcer_Refresh_ForeignRowIsNotRegistered(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1), registration("U2", "D1", enforcerBaseTime))

	decision, err := fx.enforcer.Refresh(context.Background(), &usecase.EnforceDeviceInput{
		AccountID: "U1",
		DeviceID:  "D1",
	})

	require.NoError(t, err)
	assert.False(t, decision.Registered)

	stored, err := fx.store.FindDeviceByID(context.Background(), "D1")
	require.NoError(t, err)
	assert.Equal(t, "U2", stored.AccountID)
}

func TestDeviceEnforcer_StoreFailurePropagates(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1))
	fx.store.failOn["FindDevicesByAccount"] = domainerrors.NewStoreError(errors.New("timeout"), "find devices by account")

	decision, err := fx.enforcer.Refresh(context.Background(), &usecase.EnforceDeviceInput{AccountID: "U1", DeviceID: "D1"})

	require.Error(t, err)
	assert.Nil(t, decision)
	assert.True(t, domainerrors.IsStoreError(err))
	assert.NotErrorIs(t, err, domainerrors.ErrDeviceNotRegistered)
}

// Sign in on D1, sign in on D2 with kick, then D1 keeps calling the API.
func TestDeviceEnforcer_KickedDeviceIsNoLongerRegistered(t *testing.T) {
	fx := createTestDeviceEnforcer(t, newTestConfig(1))
	ctx := context.Background()

	first, err := fx.enforcer.Register(ctx, &usecase.EnforceDeviceInput{AccountID: "U1", DeviceID: "D1"})
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	fx.publisher.EXPECT().
		PublishDeviceEvent(mock.Anything, mock.MatchedBy(func(event *service.DeviceEvent) bool {
			return event.DeviceID == "D1" && event.CauseDeviceID == "D2"
		})).
		Return(nil).
		Once()

	second, err := fx.enforcer.Register(ctx, &usecase.EnforceDeviceInput{AccountID: "U1", DeviceID: "D2", AllowEviction: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"D1"}, second.Evicted)

	steady, err := fx.enforcer.Refresh(ctx, &usecase.EnforceDeviceInput{AccountID: "U1", DeviceID: "D1"})
	require.NoError(t, err)
	assert.False(t, steady.Registered)
	assert.False(t, steady.Allowed)
	assert.True(t, steady.LimitApplied)
	assert.Equal(t, []string{"D2"}, fx.store.deviceIDs("U1"))
}
