package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"sync"
	"time"

	"famhealth/config"
	domainerrors "famhealth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter controls how frequently a caller may perform an action.
type RateLimiter interface {
	Allow(key string) bool
}

// keyedRateLimiter tracks request rates per key with expiration.
type keyedRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

// NewKeyedRateLimiter constructs a per-key rate limiter that allows up to `requests` events per `window`
// with an additional burst capacity. Entries expire after ttl without use.
func NewKeyedRateLimiter(requests int, window time.Duration, burst int, ttl time.Duration) *keyedRateLimiter {
	if requests <= 0 {
		requests = 1
	}
	if window <= 0 {
		window = time.Second
	}
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &keyedRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (l *keyedRateLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}

	now := l.now()

	l.mu.Lock()
	v := l.getVisitorLocked(key, now)
	l.gcLocked(now)
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

func (l *keyedRateLimiter) getVisitorLocked(key string, now time.Time) *visitor {
	if v, ok := l.visitors[key]; ok {
		v.lastSeen = now

		return v
	}

	v := &visitor{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.visitors[key] = v

	return v
}

func (l *keyedRateLimiter) gcLocked(now time.Time) {
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, key)
		}
	}
}

// RateLimitMiddleware limits pre-authentication calls per account.
type RateLimitMiddleware struct {
	limiter RateLimiter
}

// NewRateLimitMiddleware creates the hook rate limiter from configuration
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.Hook.RateLimit

	return &RateLimitMiddleware{
		limiter: NewKeyedRateLimiter(rl.Requests, rl.Window, rl.Burst, rl.TTL),
	}
}

// Limit keys the limiter by the body's account id, falling back to the client IP.
// The body is restored for the handler.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("unreadable request body")
		}
		c.Request().Body = io.NopCloser(bytes.NewReader(body))

		var probe struct {
			AccountID string `json:"accountId"`
		}
		_ = json.Unmarshal(body, &probe)

		key := probe.AccountID
		if key == "" {
			key = "ip:" + c.RealIP()
		}

		if !m.limiter.Allow(key) {
			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
