package postgres

import (
	"context"
	"log/slog"

	"recipebox/config"
	"recipebox/internal/domain/lifecycle"
	"recipebox/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry `optional:"true"`
}

// New creates the PostgreSQL client backing the user record, recipe and credential repositories.
// Pool statistics are exported on the registry as go_sql_* metrics.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section is missing from the config")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement work goes through the TransactionManager.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	var poolCollector prometheus.Collector
	if params.Registry != nil {
		poolCollector = collectors.NewDBStatsCollector(sqlDB, "recipebox")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if poolCollector != nil {
				if err := params.Registry.Register(poolCollector); err != nil {
					params.Logger.Warn("Postgres pool metrics not registered", slog.Any("error", err))
				}
			}

			stats := sqlDB.Stats()
			params.Logger.Info("Connected to PostgreSQL", slog.Int("max_open_conns", stats.MaxOpenConnections))

			return nil
		},
		OnStop: func(_ context.Context) error {
			if poolCollector != nil {
				params.Registry.Unregister(poolCollector)
			}

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}
