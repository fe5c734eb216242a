package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	mockUsecase "famhealth/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOutcomeContext(method, target string, outcome *entity.AccessOutcome) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(method, target, nil), rec)
	if outcome != nil {
		deliverycontext.SetAccessOutcome(c, outcome)
	}

	return c, rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func TestAccessHandler(t *testing.T) {
	h := NewAccessHandler()
	outcome := &entity.AccessOutcome{
		Identity:   entity.Identity{AccountID: "acct-1"},
		Subscribed: true,
		Device:     &entity.DeviceCheck{DeviceID: "dev-1", Registered: true, Allowed: true},
	}

	t.Run("access outcome", func(t *testing.T) {
		c, rec := newOutcomeContext(http.MethodGet, "/api/v1/access", outcome)

		require.NoError(t, h.GetAccess(c))

		got := decodeData[entity.AccessOutcome](t, rec)
		assert.Equal(t, "acct-1", got.Identity.AccountID)
		require.NotNil(t, got.Device)
		assert.True(t, got.Device.Allowed)
	})

	t.Run("subscription", func(t *testing.T) {
		c, rec := newOutcomeContext(http.MethodGet, "/api/v1/subscription", outcome)

		require.NoError(t, h.GetSubscription(c))

		assert.True(t, decodeData[SubscriptionResponse](t, rec).Subscribed)
	})

	t.Run("missing outcome is an internal error", func(t *testing.T) {
		c, _ := newOutcomeContext(http.MethodGet, "/api/v1/access", nil)

		assert.ErrorIs(t, h.GetAccess(c), domainerrors.ErrInternalError)
	})
}

type deviceHandlerTestFixtures struct {
	handler  *DeviceHandler
	deviceUC *mockUsecase.MockDeviceUsecase
}

func createTestDeviceHandler(t *testing.T) *deviceHandlerTestFixtures {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return &deviceHandlerTestFixtures{
		handler: NewDeviceHandler(DeviceHandlerParams{
			DeviceUC: deviceUC,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		deviceUC: deviceUC,
	}
}

func TestDeviceHandler_ListDevices_MarksCurrent(t *testing.T) {
	fx := createTestDeviceHandler(t)
	seen := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fx.deviceUC.EXPECT().ListDevices(mock.Anything, "acct-1").Return([]*entity.DeviceRegistration{
		{DeviceID: "dev-2", AccountID: "acct-1", LastSeenAt: seen},
		{DeviceID: "dev-1", AccountID: "acct-1", LastSeenAt: seen.Add(-time.Hour)},
	}, nil)

	c, rec := newOutcomeContext(http.MethodGet, "/api/v1/devices", &entity.AccessOutcome{
		Identity: entity.Identity{AccountID: "acct-1"},
		Device:   &entity.DeviceCheck{DeviceID: "dev-1", Registered: true, Allowed: true},
	})

	require.NoError(t, fx.handler.ListDevices(c))

	devices := decodeData[[]DeviceResponse](t, rec)
	require.Len(t, devices, 2)
	assert.Equal(t, "dev-2", devices[0].DeviceID)
	assert.False(t, devices[0].Current)
	assert.True(t, devices[1].Current)
}

func TestDeviceHandler_RevokeDevice(t *testing.T) {
	tests := []struct {
		name       string
		deviceID   string
		setupMocks func(deviceUC *mockUsecase.MockDeviceUsecase)
		wantErr    error
	}{
		{
			name:     "revoked",
			deviceID: "dev-2",
			setupMocks: func(deviceUC *mockUsecase.MockDeviceUsecase) {
				deviceUC.EXPECT().RevokeDevice(mock.Anything, "acct-1", "dev-2").Return(nil)
			},
		},
		{
			name:     "not owned",
			deviceID: "dev-9",
			setupMocks: func(deviceUC *mockUsecase.MockDeviceUsecase) {
				deviceUC.EXPECT().RevokeDevice(mock.Anything, "acct-1", "dev-9").Return(domainerrors.ErrDeviceNotFound)
			},
			wantErr: domainerrors.ErrDeviceNotFound,
		},
		{
			name:     "blank id",
			deviceID: " ",
			wantErr:  domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceHandler(t)
			if tt.setupMocks != nil {
				tt.setupMocks(fx.deviceUC)
			}

			c, rec := newOutcomeContext(http.MethodDelete, "/api/v1/devices/x", &entity.AccessOutcome{
				Identity: entity.Identity{AccountID: "acct-1"},
			})
			c.SetParamNames("deviceId")
			c.SetParamValues(tt.deviceID)

			err := fx.handler.RevokeDevice(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "revoked", decodeData[map[string]string](t, rec)["status"])
		})
	}
}
