package main

import (
	"context"
	"log/slog"
	"os"

	"audiotour/config"
	"audiotour/internal/delivery"
	"audiotour/internal/delivery/api"
	"audiotour/internal/delivery/api/router/handler"
	"audiotour/internal/infra/catalog"
	logs "audiotour/internal/infra/log"
	"audiotour/internal/infra/notification"
	"audiotour/internal/infra/pubsub"
	"audiotour/internal/infra/snapshot"
	"audiotour/internal/infra/speech"
	"audiotour/internal/usecase"
	"audiotour/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			registerSessionShutdown,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		catalog.Module,
		snapshot.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		speech.Module,
		notification.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTourService,
			func(svc impl.TourService) usecase.TourUsecase { return svc },
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRouteHandler,
			handler.NewTourHandler,
			handler.NewEventHandler,
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

// registerSessionShutdown closes the active route before the publisher,
// notifier and speech engine it depends on are stopped. The snapshot is kept
// so the route can be resumed on the next start.
func registerSessionShutdown(lc fx.Lifecycle, svc impl.TourService, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing active tour session")

			return svc.Shutdown(ctx)
		},
	})
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
