// Package handler contains the identity provider hook handlers.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"famhealth/internal/delivery/api/response"
	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FlexibleBool accepts JSON booleans and the string forms identity providers send
// in client metadata ("true", "1", "yes").
type FlexibleBool bool

func (b *FlexibleBool) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*b = FlexibleBool(asBool)

		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("kickPrevious must be a boolean")
	}

	switch strings.ToLower(strings.TrimSpace(asString)) {
	case "yes", "y", "on":
		*b = true

		return nil
	case "", "no", "n", "off":
		*b = false

		return nil
	}

	parsed, err := strconv.ParseBool(asString)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("kickPrevious must be a boolean")
	}
	*b = FlexibleBool(parsed)

	return nil
}

// DeviceInfo accepts device metadata either as an object or as a JSON encoded string.
type DeviceInfo struct {
	entity.DeviceMetadata
}

func (d *DeviceInfo) UnmarshalJSON(data []byte) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		if encoded == "" {
			return nil
		}
		data = []byte(encoded)
	}

	if err := json.Unmarshal(data, &d.DeviceMetadata); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("deviceInfo must be a JSON object")
	}

	return nil
}

// ClientMetadata is the free-form metadata the client app passes through the sign-in.
type ClientMetadata struct {
	DeviceID     string       `json:"deviceId"`
	KickPrevious FlexibleBool `json:"kickPrevious"`
	DeviceInfo   *DeviceInfo  `json:"deviceInfo"`
}

// PreAuthRequest is the payload of the pre-authentication trigger.
type PreAuthRequest struct {
	AccountID      string         `json:"accountId"`
	Email          string         `json:"email" validate:"omitempty,email"`
	ClientMetadata ClientMetadata `json:"clientMetadata"`
	UserAgent      string         `json:"userAgent"`
}

// PreAuthHandlerParams holds dependencies for PreAuthHandler, injected by Fx.
type PreAuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// PreAuthHandler handles the identity provider's pre-authentication trigger.
type PreAuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewPreAuthHandler is the constructor for PreAuthHandler.
func NewPreAuthHandler(params PreAuthHandlerParams) *PreAuthHandler {
	return &PreAuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// PreAuthenticate registers the signing-in device or aborts the sign-in.
func (h *PreAuthHandler) PreAuthenticate(c echo.Context) error {
	var req PreAuthRequest
	if err := c.Bind(&req); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return appErr
		}

		return domainerrors.ErrValidationFailed.WithDetails("invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.PreAuthInput{
		AccountID:    strings.TrimSpace(req.AccountID),
		Email:        strings.TrimSpace(req.Email),
		DeviceID:     strings.TrimSpace(req.ClientMetadata.DeviceID),
		KickPrevious: bool(req.ClientMetadata.KickPrevious),
		UserAgent:    req.UserAgent,
	}
	if input.UserAgent == "" {
		input.UserAgent = c.Request().UserAgent()
	}
	if info := req.ClientMetadata.DeviceInfo; info != nil && !info.DeviceMetadata.IsEmpty() {
		metadata := info.DeviceMetadata
		input.Metadata = &metadata
	}

	output, err := h.sessionUC.PreAuthenticate(c.Request().Context(), input)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Pre-authentication denied",
				slog.String("account_id", input.AccountID),
				slog.String("device_id", input.DeviceID),
				slog.Any("error", err),
			)

		return err
	}

	return response.Success(c, http.StatusOK, output)
}
