package main

import (
	"context"
	"log/slog"
	"os"

	"macrolog/config"
	"macrolog/internal/delivery"
	"macrolog/internal/delivery/api"
	"macrolog/internal/delivery/api/middleware"
	"macrolog/internal/delivery/api/router/handler"
	"macrolog/internal/infra/archive"
	"macrolog/internal/infra/auth"
	logs "macrolog/internal/infra/log"
	"macrolog/internal/infra/metrics"
	"macrolog/internal/infra/persistence/postgres"
	"macrolog/internal/infra/pubsub"
	"macrolog/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		pubsub.Module,
		archive.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewDailyLogRepository,
			postgres.NewFoodEntryRepository,
			postgres.NewMealPlanRepository,
			postgres.NewPlannedFoodRepository,
			postgres.NewCustomFoodRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenService,
			auth.NewAuthenticator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewDailyLogService,
			impl.NewMealPlanService,
			impl.NewPlannedFoodService,
			impl.NewCustomFoodService,
			impl.NewExportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCalendar,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewDailyLogHandler,
			handler.NewMealPlanHandler,
			handler.NewPlannedFoodHandler,
			handler.NewCustomFoodHandler,
			handler.NewExportHandler,
			handler.NewHealthHandler,
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
