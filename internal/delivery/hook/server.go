// Package hook is the identity provider facing HTTP delivery.
package hook

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"famhealth/config"
	"famhealth/internal/delivery"
	apimiddleware "famhealth/internal/delivery/api/middleware"
	"famhealth/internal/delivery/api/validator"
	"famhealth/internal/delivery/hook/handler"
	hookmiddleware "famhealth/internal/delivery/hook/middleware"
	"famhealth/internal/delivery/middleware"
	"famhealth/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PreAuthPath is the route the identity provider's trigger calls.
const PreAuthPath = "/hooks/pre-authentication"

type hookServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the hook server
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	PreAuthHandler  *handler.PreAuthHandler
}

// NewServer creates a new hook HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger, params.ErrorMiddleware, params.PreAuthHandler)

	srv := &hookServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, errorMiddleware *apimiddleware.ErrorMiddleware, preAuth *handler.PreAuthHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger, "hook")
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	e.Use(loggerMiddleware.Handle)

	// 4. Request body size limit
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	secretMiddleware := hookmiddleware.NewSecretMiddleware(cfg, logger)
	rateLimitMiddleware := hookmiddleware.NewRateLimitMiddleware(cfg)

	e.POST(PreAuthPath, preAuth.PreAuthenticate, secretMiddleware.Verify, rateLimitMiddleware.Limit)

	return e
}

// Serve starts the hook HTTP server
func (s *hookServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.HookPort))
	s.logger.Info("Starting Hook HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the hook server
func (s *hookServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Hook HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
