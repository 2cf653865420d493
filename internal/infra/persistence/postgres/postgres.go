package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"audiotour/config"
	"audiotour/internal/domain/lifecycle"
	"audiotour/internal/errors"
	"audiotour/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	catalogPoolMonitorInterval = 30 * time.Second
	catalogPoolWaitWarning     = 50 * time.Millisecond
)

// CatalogParams holds what OpenCatalog needs. AutoMigrate creates the routes
// and route_stops tables on start.
type CatalogParams struct {
	Lifecycle   fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	AutoMigrate bool
}

// OpenCatalog connects to the route catalog database. The connection is only
// read from, so statements run outside implicit transactions and are prepared
// once per connection.
func OpenCatalog(params CatalogParams) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect route catalog database")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get route catalog sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := prepareCatalog(ctx, db, sqlDB, params.AutoMigrate, params.Logger); err != nil {
				return err
			}

			go monitorCatalogPool(monitorCtx, params.Logger, sqlDB, catalogPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// prepareCatalog checks the connection, migrates when asked, and logs how many
// routes the catalog serves.
func prepareCatalog(ctx context.Context, db *gorm.DB, sqlDB *sql.DB, autoMigrate bool, logger *slog.Logger) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping route catalog database")
	}

	if autoMigrate {
		if err := db.WithContext(ctx).AutoMigrate(&model.RouteModel{}, &model.StopModel{}); err != nil {
			return errors.Wrap(err, "failed to migrate route catalog tables")
		}
	}

	var routes int64
	if err := db.WithContext(ctx).Model(&model.RouteModel{}).Count(&routes).Error; err != nil {
		return errors.Wrap(err, "failed to count catalog routes")
	}

	logger.Info("Route catalog database ready",
		slog.Int64("routes", routes),
		slog.Bool("auto_migrate", autoMigrate),
	)

	return nil
}

// monitorCatalogPool reports connection waits. Route lookups are short, so any
// sustained wait means the pool is undersized for the request rate.
func monitorCatalogPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			logCatalogPoolWait(ctx, logger, prev, cur)
			prev = cur
		}
	}
}

func logCatalogPoolWait(ctx context.Context, logger *slog.Logger, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= catalogPoolWaitWarning {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "Route catalog waited for connections",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
	)
}
