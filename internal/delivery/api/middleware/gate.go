package middleware

import (
	"encoding/json"
	"log/slog"
	"strings"

	"famhealth/config"
	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/service"
	"famhealth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleQueryParam selects the profile role a route checks when it reads the role from the query.
const RoleQueryParam = "role"

// GateMiddlewareParams holds dependencies for GateMiddleware, injected by Fx.
type GateMiddlewareParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
	Parser   service.DeviceMetadataParser
	Config   *config.Config
	Logger   *slog.Logger
}

// GateMiddleware runs the access gate in front of protected routes.
type GateMiddleware struct {
	accessUC   usecase.AccessUsecase
	parser     service.DeviceMetadataParser
	idHeader   string
	infoHeader string
	logger     *slog.Logger
}

// NewGateMiddleware is the constructor for GateMiddleware.
func NewGateMiddleware(params GateMiddlewareParams) *GateMiddleware {
	return &GateMiddleware{
		accessUC:   params.AccessUC,
		parser:     params.Parser,
		idHeader:   params.Config.Device.IDHeader,
		infoHeader: params.Config.Device.InfoHeader,
		logger:     params.Logger,
	}
}

// Require runs the gate with fixed options. It must be used AFTER AuthMiddleware.Authenticate.
func (m *GateMiddleware) Require(opts usecase.AccessOptions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := m.enforce(c, opts); err != nil {
				return err
			}

			return next(c)
		}
	}
}

// RequireProfileRole runs the gate with a profile requirement taken from the path parameter
// and the role query parameter, which defaults to viewer.
func (m *GateMiddleware) RequireProfileRole(opts usecase.AccessOptions, profileParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := entity.RoleViewer
			if raw := c.QueryParam(RoleQueryParam); raw != "" {
				role = entity.Role(strings.ToLower(raw))
			}
			if !role.IsValid() {
				return domainerrors.ErrValidationFailed.WithDetails("role must be one of viewer, editor, owner")
			}

			routeOpts := opts
			routeOpts.Profile = &usecase.ProfileRequirement{
				ID:           c.Param(profileParam),
				RequiredRole: role,
			}

			if err := m.enforce(c, routeOpts); err != nil {
				return err
			}

			return next(c)
		}
	}
}

func (m *GateMiddleware) enforce(c echo.Context, opts usecase.AccessOptions) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	req := &usecase.AccessRequest{
		Identity: identity,
		DeviceID: strings.TrimSpace(c.Request().Header.Get(m.idHeader)),
	}
	if opts.RequiresDevice() {
		req.Metadata = m.deviceMetadata(c)
	}

	outcome, err := m.accessUC.Enforce(c.Request().Context(), req, opts)
	if err != nil {
		return err
	}

	deliverycontext.SetAccessOutcome(c, outcome)

	return nil
}

// deviceMetadata reads the optional device info header and completes it from the
// User-Agent. Malformed or missing metadata never fails the request.
func (m *GateMiddleware) deviceMetadata(c echo.Context) *entity.DeviceMetadata {
	var metadata *entity.DeviceMetadata

	if raw := c.Request().Header.Get(m.infoHeader); raw != "" {
		parsed := &entity.DeviceMetadata{}
		if err := json.Unmarshal([]byte(raw), parsed); err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Warn("Ignoring malformed device info header", slog.Any("error", err))
		} else {
			metadata = parsed
		}
	}

	if ua := c.Request().UserAgent(); ua != "" {
		metadata = metadata.FillMissing(m.parser.Parse(ua))
	}

	if metadata.IsEmpty() {
		return nil
	}

	return metadata
}
