package handler

import (
	"net/http"

	"famhealth/internal/delivery/api/response"
	deliverycontext "famhealth/internal/delivery/context"
	domainerrors "famhealth/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// AccessHandler exposes the access gate's outcome to clients.
type AccessHandler struct{}

// NewAccessHandler creates a new AccessHandler instance
func NewAccessHandler() *AccessHandler {
	return &AccessHandler{}
}

// SubscriptionResponse is the body of GET /api/v1/subscription
type SubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}

// GetAccess returns the composed access outcome for the caller and device
func (h *AccessHandler) GetAccess(c echo.Context) error {
	outcome, ok := deliverycontext.GetAccessOutcome(c)
	if !ok {
		return domainerrors.ErrInternalError.WithDetails("access outcome missing from context")
	}

	return response.Success(c, http.StatusOK, outcome)
}

// GetSubscription reports whether the caller is on a paid tier
func (h *AccessHandler) GetSubscription(c echo.Context) error {
	outcome, ok := deliverycontext.GetAccessOutcome(c)
	if !ok {
		return domainerrors.ErrInternalError.WithDetails("access outcome missing from context")
	}

	return response.Success(c, http.StatusOK, SubscriptionResponse{Subscribed: outcome.Subscribed})
}
