package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"famhealth/config"
	domainerrors "famhealth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHookConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Hook.Secret = secret

	return cfg
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestSecretMiddleware_Verify(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provided   string
		wantErr    bool
	}{
		{name: "matching secret", configured: "s3cret", provided: "s3cret"},
		{name: "wrong secret", configured: "s3cret", provided: "guess", wantErr: true},
		{name: "missing header", configured: "s3cret", wantErr: true},
		{name: "unconfigured secret rejects everything", configured: "", provided: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newHookConfig(tt.configured)
			m := NewSecretMiddleware(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

			req := httptest.NewRequest(http.MethodPost, "/hooks/pre-authentication", nil)
			if tt.provided != "" {
				req.Header.Set(cfg.Hook.SecretHeader, tt.provided)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			err := m.Verify(okHandler)(c)

			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestKeyedRateLimiter_Allow(t *testing.T) {
	limiter := NewKeyedRateLimiter(1, time.Minute, 2, time.Minute)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	assert.True(t, limiter.Allow("acct-1"))
	assert.True(t, limiter.Allow("acct-1"))
	assert.False(t, limiter.Allow("acct-1"))
	assert.True(t, limiter.Allow("acct-2"), "keys are limited independently")

	base = base.Add(time.Minute)
	assert.True(t, limiter.Allow("acct-1"), "a token refills after the window")
}

func TestKeyedRateLimiter_ExpiresIdleKeys(t *testing.T) {
	limiter := NewKeyedRateLimiter(1, time.Hour, 1, time.Minute)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	require.True(t, limiter.Allow("acct-1"))
	require.False(t, limiter.Allow("acct-1"))

	base = base.Add(2 * time.Minute)
	limiter.Allow("acct-2")

	limiter.mu.Lock()
	_, tracked := limiter.visitors["acct-1"]
	limiter.mu.Unlock()
	assert.False(t, tracked)
}

func TestRateLimitMiddleware_KeysByAccountAndRestoresBody(t *testing.T) {
	cfg := newHookConfig("s3cret")
	cfg.Hook.RateLimit.Requests = 1
	cfg.Hook.RateLimit.Window = time.Hour
	cfg.Hook.RateLimit.Burst = 1
	m := NewRateLimitMiddleware(cfg)

	body := `{"accountId":"acct-1","clientMetadata":{"deviceId":"dev-1"}}`
	call := func(payload string) (string, error) {
		req := httptest.NewRequest(http.MethodPost, "/hooks/pre-authentication", strings.NewReader(payload))
		c := echo.New().NewContext(req, httptest.NewRecorder())

		var seen string
		err := m.Limit(func(c echo.Context) error {
			raw, readErr := io.ReadAll(c.Request().Body)
			seen = string(raw)

			return readErr
		})(c)

		return seen, err
	}

	seen, err := call(body)
	require.NoError(t, err)
	assert.Equal(t, body, seen)

	_, err = call(body)
	assert.ErrorIs(t, err, domainerrors.ErrRateLimited)

	_, err = call(`{"accountId":"acct-2"}`)
	assert.NoError(t, err)
}
