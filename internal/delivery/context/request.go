// Package context carries the per-request data of the access gate: the request id,
// the request-scoped logger, the verified caller and the gate's outcome.
//
// Handlers read it from echo.Context. Usecases only see context.Context, so
// everything they need is mirrored onto the request context as well.
package context

import (
	"context"
	"log/slog"

	"famhealth/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request id is read from and echoed back on.
const HeaderXRequestID = echo.HeaderXRequestID

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
	identityKey
)

// Keys used on echo.Context.
const (
	echoRequestID = "famhealth.request_id"
	echoIdentity  = "famhealth.identity"
	echoOutcome   = "famhealth.access_outcome"
)

// BindRequest attaches the request id and the request-scoped logger to both contexts.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestID, requestID)

	ctx := context.WithValue(c.Request().Context(), requestIDKey, requestID)
	ctx = context.WithValue(ctx, loggerKey, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestID returns the id bound to the request, or "" before BindRequest ran.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity records the verified caller. Once set, every line written through the
// request logger carries the account id.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(echoIdentity, identity)

	ctx := context.WithValue(c.Request().Context(), identityKey, identity)
	if logger := GetLogger(ctx); logger != nil {
		ctx = context.WithValue(ctx, loggerKey, logger.With(slog.String("account_id", identity.AccountID)))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetIdentity returns the caller verified by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(echoIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}

// GetIdentityFromContext is GetIdentity for code that only holds a context.Context.
func GetIdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*entity.Identity)

	return identity, ok && identity != nil
}

// SetAccessOutcome hands the gate's decision to the handler behind it.
func SetAccessOutcome(c echo.Context, outcome *entity.AccessOutcome) {
	c.Set(echoOutcome, outcome)
}

// GetAccessOutcome returns the gate's decision for this request.
func GetAccessOutcome(c echo.Context) (*entity.AccessOutcome, bool) {
	outcome, ok := c.Get(echoOutcome).(*entity.AccessOutcome)

	return outcome, ok && outcome != nil
}
