package main

import (
	"context"
	"log/slog"
	"os"

	"recipebox/config"
	"recipebox/internal/delivery"
	"recipebox/internal/delivery/worker"
	"recipebox/internal/delivery/worker/handler"
	"recipebox/internal/domain/constants"
	"recipebox/internal/errors"
	"recipebox/internal/infra/firebaseapp"
	logs "recipebox/internal/infra/log"
	"recipebox/internal/infra/metrics"
	"recipebox/internal/infra/persistence/firestore"
	"recipebox/internal/infra/persistence/postgres"
	"recipebox/internal/infra/storage"
	"recipebox/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// The sweeper shares config with the API; run it on its own port with HTTP_PORT.
func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectStorage(cfg),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.NewCollector,
		metrics.NewAccountMetrics,
		firebaseapp.New,
	)
}

// injectRepo provides the user records the sweeper reads the current photo from.
func injectRepo(cfg *config.Config) fx.Option {
	provider := constants.DocumentsProviderPostgres
	if cfg.Documents != nil && cfg.Documents.Provider != "" {
		provider = cfg.Documents.Provider
	}

	switch provider {
	case constants.DocumentsProviderFirestore:
		return fx.Provide(firestore.NewUserRecordRepository)
	case constants.DocumentsProviderPostgres:
		return fx.Provide(
			postgres.New,
			postgres.NewUserRecordRepository,
		)
	default:
		return fx.Error(errors.Errorf("unknown documents provider %q", provider))
	}
}

func injectStorage(cfg *config.Config) fx.Option {
	provider := constants.StorageProviderBlob
	if cfg.Storage != nil && cfg.Storage.Provider != "" {
		provider = cfg.Storage.Provider
	}

	switch provider {
	case constants.StorageProviderFirebase:
		return fx.Provide(storage.NewFirebaseObjectStore)
	case constants.StorageProviderBlob:
		return fx.Provide(storage.NewBlobObjectStore)
	default:
		return fx.Error(errors.Errorf("unknown storage provider %q", provider))
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSweeperService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
