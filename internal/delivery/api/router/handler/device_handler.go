package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"famhealth/internal/delivery/api/response"
	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// DeviceResponse is one registration as shown to its owner
type DeviceResponse struct {
	DeviceID   string                 `json:"device_id"`
	LastSeenAt time.Time              `json:"last_seen_at"`
	Metadata   *entity.DeviceMetadata `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	Current    bool                   `json:"current"`
}

// ListDevices returns the caller's registrations, marking the device making the request
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	outcome, ok := deliverycontext.GetAccessOutcome(c)
	if !ok {
		return domainerrors.ErrInternalError.WithDetails("access outcome missing from context")
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), outcome.Identity.AccountID)
	if err != nil {
		return err
	}

	currentID := ""
	if outcome.Device != nil {
		currentID = outcome.Device.DeviceID
	}

	result := make([]DeviceResponse, 0, len(devices))
	for _, device := range devices {
		result = append(result, DeviceResponse{
			DeviceID:   device.DeviceID,
			LastSeenAt: device.LastSeenAt,
			Metadata:   device.Metadata,
			CreatedAt:  device.CreatedAt,
			Current:    device.DeviceID == currentID,
		})
	}

	return response.Success(c, http.StatusOK, result)
}

// RevokeDevice removes one of the caller's registrations
func (h *DeviceHandler) RevokeDevice(c echo.Context) error {
	outcome, ok := deliverycontext.GetAccessOutcome(c)
	if !ok {
		return domainerrors.ErrInternalError.WithDetails("access outcome missing from context")
	}

	deviceID := strings.TrimSpace(c.Param("deviceId"))
	if deviceID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("device id is required")
	}

	if err := h.deviceUC.RevokeDevice(c.Request().Context(), outcome.Identity.AccountID, deviceID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{"device_id": deviceID, "status": "revoked"})
}
