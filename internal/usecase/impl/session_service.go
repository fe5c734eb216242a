package impl

import (
	"context"
	"log/slog"
	"strings"

	"famhealth/config"
	deliverycontext "famhealth/internal/delivery/context"
	"famhealth/internal/domain/entity"
	domainerrors "famhealth/internal/domain/errors"
	"famhealth/internal/domain/service"
	"famhealth/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	subscriptions usecase.SubscriptionUsecase
	enforcer      usecase.DeviceEnforcer
	parser        service.DeviceMetadataParser
	hookStatuses  []entity.SubscriptionStatus
	freeLimit     int
	logger        *slog.Logger
}

// SessionServiceParams holds dependencies for the session service, injected by Fx
type SessionServiceParams struct {
	fx.In

	Subscriptions usecase.SubscriptionUsecase
	Enforcer      usecase.DeviceEnforcer
	Parser        service.DeviceMetadataParser
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		subscriptions: params.Subscriptions,
		enforcer:      params.Enforcer,
		parser:        params.Parser,
		hookStatuses:  entity.SubscriptionStatusesFromStrings(params.Config.Subscription.HookStatuses),
		freeLimit:     params.Config.Device.FreeLimit,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PreAuthenticate is the only place a device registration is created.
func (srv *sessionService) PreAuthenticate(ctx context.Context, input *usecase.PreAuthInput) (*usecase.PreAuthOutput, error) {
	if input == nil || strings.TrimSpace(input.AccountID) == "" {
		return nil, domainerrors.ErrUnauthorized
	}
	if strings.TrimSpace(input.DeviceID) == "" {
		return nil, domainerrors.ErrDeviceRequired
	}

	metadata := input.Metadata
	if input.UserAgent != "" {
		metadata = metadata.FillMissing(srv.parser.Parse(input.UserAgent))
	}

	subscribed, err := srv.subscriptions.RefreshStatus(ctx, input.AccountID, srv.hookStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh subscription status")
	}

	decision, err := srv.enforcer.Register(ctx, &usecase.EnforceDeviceInput{
		AccountID:     input.AccountID,
		DeviceID:      input.DeviceID,
		Subscribed:    subscribed,
		AllowEviction: input.KickPrevious,
		Limit:         srv.freeLimit,
		Metadata:      metadata,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Pre-authentication passed",
		slog.String("account_id", input.AccountID),
		slog.String("device_id", input.DeviceID),
		slog.Bool("subscribed", subscribed),
		slog.Int("evicted", len(decision.Evicted)),
		slog.Bool("transferred", decision.Transferred),
	)

	evicted := decision.Evicted
	if evicted == nil {
		evicted = []string{}
	}

	return &usecase.PreAuthOutput{
		Allowed:    decision.Allowed,
		Subscribed: subscribed,
		Evicted:    evicted,
	}, nil
}
