package snapshot

import (
	"context"
	"log/slog"
	"time"

	"audiotour/config"
	"audiotour/internal/domain/constants"
	"audiotour/internal/domain/repository"
	"audiotour/internal/infra/storage"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisPingTimeout = 5 * time.Second

// Params holds dependencies for the snapshot repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSnapshotRepository creates the snapshot store selected by configuration
func NewSnapshotRepository(params Params) (repository.SnapshotRepository, error) {
	cfg := params.Config.Snapshot
	logger := params.Logger

	switch cfg.Provider {
	case "", constants.SnapshotProviderMemory:
		logger.Info("Using in-memory snapshot store; resume will not survive a restart")

		return NewMemoryRepository(), nil

	case constants.SnapshotProviderRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis snapshot provider")
		}

		client, err := openRedis(params.Ctx, params.Config.Redis)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				logger.Info("Closing Redis client")

				return errors.WithStack(client.Close())
			},
		})
		logger.Info("Using Redis snapshot store", slog.String("addr", params.Config.Redis.Addr))

		return NewRedisRepository(client, cfg.KeyPrefix, cfg.TTL, logger), nil

	case constants.SnapshotProviderBlob:
		bucket, err := storage.OpenBucket(params.Ctx, params.Lc, cfg.BucketURL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob snapshot store", slog.String("bucket_url", cfg.BucketURL))

		return NewBlobRepository(bucket, cfg.KeyPrefix), nil

	default:
		return nil, errors.Errorf("unknown snapshot provider: %s", cfg.Provider)
	}
}

func openRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "redis connection failed")
	}

	return client, nil
}

// Module provides the snapshot FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSnapshotRepository),
)
