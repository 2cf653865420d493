package catalog

import (
	"context"
	"log/slog"

	"audiotour/config"
	"audiotour/internal/domain/constants"
	"audiotour/internal/domain/repository"
	"audiotour/internal/infra/persistence/postgres"
	"audiotour/internal/infra/storage"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the route catalog, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewRouteRepository creates the catalog selected by configuration
func NewRouteRepository(params Params) (repository.RouteRepository, error) {
	cfg := params.Config.Catalog
	logger := params.Logger

	switch cfg.Provider {
	case "", constants.CatalogProviderBlob:
		if cfg.Key == "" {
			return nil, errors.New("catalog key is required for blob catalog provider")
		}
		bucket, err := storage.OpenBucket(params.Ctx, params.Lc, cfg.BucketURL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob route catalog",
			slog.String("bucket_url", cfg.BucketURL),
			slog.String("key", cfg.Key),
		)

		return NewBlobRepository(bucket, cfg.Key, logger), nil

	case constants.CatalogProviderPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for postgres catalog provider")
		}
		db, err := postgres.OpenCatalog(postgres.CatalogParams{
			Lifecycle:   params.Lc,
			Config:      params.Config,
			Logger:      logger,
			AutoMigrate: cfg.AutoMigrate,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL route catalog")

		return postgres.NewRouteRepository(db), nil

	default:
		return nil, errors.Errorf("unknown catalog provider: %s", cfg.Provider)
	}
}

// Module provides the route catalog FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouteRepository),
)
