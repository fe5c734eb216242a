package main

import (
	"context"
	"log/slog"
	"os"

	"famhealth/config"
	"famhealth/internal/delivery"
	"famhealth/internal/delivery/api"
	apimiddleware "famhealth/internal/delivery/api/middleware"
	"famhealth/internal/delivery/api/router/handler"
	"famhealth/internal/delivery/hook"
	hookhandler "famhealth/internal/delivery/hook/handler"
	"famhealth/internal/infra/auth"
	"famhealth/internal/infra/cache"
	logs "famhealth/internal/infra/log"
	"famhealth/internal/infra/persistence/postgres"
	"famhealth/internal/infra/pubsub"
	"famhealth/internal/infra/useragent"
	"famhealth/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewProfileRepository,
			postgres.NewShareRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			useragent.NewParser,
			cache.NewSubscriptionStatusCache,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceEnforcer,
			impl.NewRoleResolver,
			impl.NewSubscriptionService,
			impl.NewAccessGate,
			impl.NewSessionService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewGateMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccessHandler,
			handler.NewDeviceHandler,
			hookhandler.NewPreAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				hook.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
