// Package middleware contains the hook server's echo middleware.
package middleware

import (
	"crypto/subtle"
	"log/slog"

	"famhealth/config"
	deliverycontext "famhealth/internal/delivery/context"
	domainerrors "famhealth/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SecretMiddleware authenticates the identity provider by a shared secret header.
type SecretMiddleware struct {
	secret []byte
	header string
	logger *slog.Logger
}

// NewSecretMiddleware creates a new shared secret middleware
func NewSecretMiddleware(cfg *config.Config, logger *slog.Logger) *SecretMiddleware {
	return &SecretMiddleware{
		secret: []byte(cfg.Hook.Secret),
		header: cfg.Hook.SecretHeader,
		logger: logger,
	}
}

// Verify rejects requests whose secret header does not match. An empty configured
// secret rejects every request.
func (m *SecretMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		provided := []byte(c.Request().Header.Get(m.header))

		if len(m.secret) == 0 || subtle.ConstantTimeCompare(provided, m.secret) != 1 {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Rejected hook call with invalid secret", slog.String("remote_ip", c.RealIP()))

			return domainerrors.ErrUnauthorized.WithDetails("invalid hook secret")
		}

		return next(c)
	}
}
