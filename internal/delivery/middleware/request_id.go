// Package middleware contains echo middleware shared by every inbound server.
package middleware

import (
	"log/slog"

	deliverycontext "famhealth/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied request ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware generates or extracts a unique Request ID for each request and creates a request-scoped logger
type RequestIDMiddleware struct {
	logger  *slog.Logger
	service string
}

// NewRequestIDMiddleware creates a new Request ID middleware. The service name is
// attached to the request-scoped logger so the API and hook servers are told apart.
func NewRequestIDMiddleware(logger *slog.Logger, service string) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger:  logger,
		service: service,
	}
}

// Process handles the generation or extraction of the Request ID and creates a logger with requestID
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		deliverycontext.BindRequest(c, requestID, m.logger.With(
			slog.String("request_id", requestID),
			slog.String("server", m.service),
		))

		return next(c)
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}

	return true
}
