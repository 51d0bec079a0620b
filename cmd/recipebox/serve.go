package main

import (
	"context"
	"log/slog"
	"os"

	"recipebox/config"
	"recipebox/internal/delivery"
	"recipebox/internal/delivery/api"
	apimiddleware "recipebox/internal/delivery/api/middleware"
	"recipebox/internal/delivery/api/router/handler"
	"recipebox/internal/domain/constants"
	"recipebox/internal/errors"
	"recipebox/internal/infra/auth"
	"recipebox/internal/infra/avatar"
	"recipebox/internal/infra/firebaseapp"
	firebaseidentity "recipebox/internal/infra/identity/firebase"
	localidentity "recipebox/internal/infra/identity/local"
	logs "recipebox/internal/infra/log"
	"recipebox/internal/infra/metrics"
	"recipebox/internal/infra/persistence/firestore"
	"recipebox/internal/infra/persistence/postgres"
	"recipebox/internal/infra/pubsub"
	"recipebox/internal/infra/sessionhub"
	"recipebox/internal/infra/storage"
	"recipebox/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the account API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			app := fx.New(
				fx.Supply(cfg),
				fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
					return &fxevent.SlogLogger{Logger: logger}
				}),
				injectInfra(cfg),
				injectIdentity(cfg),
				injectDocuments(cfg),
				injectStorage(cfg),
				injectService(),
				injectUsecase(),
				injectMiddleware(),
				injectHandler(),
				injectDelivery(),
				fx.Invoke(
					startServer,
				),
			)
			if err := app.Err(); err != nil {
				return err
			}

			app.Run()

			return nil
		},
	}
}

func injectInfra(cfg *config.Config) fx.Option {
	options := []fx.Option{
		fx.Provide(
			logs.New,
			context.Background,
			metrics.NewRegistry,
			metrics.NewCollector,
			metrics.NewAccountMetrics,
			firebaseapp.New,
			sessionhub.New,
			sessionhub.NewNotifier,
		),
		pubsub.Module,
	}

	if usesPostgres(cfg) {
		options = append(options, fx.Provide(postgres.New))
	}

	return fx.Options(options...)
}

// usesPostgres reports whether the local identity provider or the postgres document store is selected.
func usesPostgres(cfg *config.Config) bool {
	return identityProvider(cfg) == constants.IdentityProviderLocal ||
		documentsProvider(cfg) == constants.DocumentsProviderPostgres
}

func identityProvider(cfg *config.Config) string {
	if cfg.Identity == nil || cfg.Identity.Provider == "" {
		return constants.IdentityProviderLocal
	}

	return cfg.Identity.Provider
}

func documentsProvider(cfg *config.Config) string {
	if cfg.Documents == nil || cfg.Documents.Provider == "" {
		return constants.DocumentsProviderPostgres
	}

	return cfg.Documents.Provider
}

func storageProvider(cfg *config.Config) string {
	if cfg.Storage == nil || cfg.Storage.Provider == "" {
		return constants.StorageProviderBlob
	}

	return cfg.Storage.Provider
}

func injectIdentity(cfg *config.Config) fx.Option {
	switch provider := identityProvider(cfg); provider {
	case constants.IdentityProviderFirebase:
		return fx.Provide(firebaseidentity.NewIdentityProvider)
	case constants.IdentityProviderLocal:
		return fx.Provide(
			postgres.NewCredentialRepository,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			localidentity.NewIdentityProvider,
		)
	default:
		return fx.Error(errors.Errorf("unknown identity provider %q", provider))
	}
}

func injectDocuments(cfg *config.Config) fx.Option {
	switch provider := documentsProvider(cfg); provider {
	case constants.DocumentsProviderFirestore:
		return fx.Provide(
			firestore.NewUserRecordRepository,
			firestore.NewRecipeRepository,
		)
	case constants.DocumentsProviderPostgres:
		return fx.Provide(
			postgres.NewUserRecordRepository,
			postgres.NewRecipeRepository,
		)
	default:
		return fx.Error(errors.Errorf("unknown documents provider %q", provider))
	}
}

func injectStorage(cfg *config.Config) fx.Option {
	switch provider := storageProvider(cfg); provider {
	case constants.StorageProviderFirebase:
		return fx.Provide(storage.NewFirebaseObjectStore)
	case constants.StorageProviderBlob:
		return fx.Provide(storage.NewBlobObjectStore)
	default:
		return fx.Error(errors.Errorf("unknown storage provider %q", provider))
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			avatar.NewGenerator,
			avatar.NewProber,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRecordCache,
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSessionHandler,
			handler.NewProfileHandler,
			handler.NewSettingsHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
