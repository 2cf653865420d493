package snapshot

import (
	"context"
	"log/slog"
	"time"

	"audiotour/internal/domain/entity"
	"audiotour/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisRepository stores snapshots as JSON strings under prefix+deviceID.
// A zero ttl keeps them until the route ends.
func NewRedisRepository(client redis.UniversalClient, prefix string, ttl time.Duration, logger *slog.Logger) repository.SnapshotRepository {
	return &redisRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With("component", "redis_snapshot"),
	}
}

func (r *redisRepository) key(deviceID string) string {
	return r.prefix + deviceID
}

func (r *redisRepository) Save(ctx context.Context, deviceID string, state *entity.ActiveRouteState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := r.client.Set(ctx, r.key(deviceID), data, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set snapshot")
	}
	r.logger.Debug("snapshot saved", "device_id", deviceID, "size_bytes", len(data), "duration_ms", time.Since(start).Milliseconds())

	return nil
}

func (r *redisRepository) Load(ctx context.Context, deviceID string) (*entity.ActiveRouteState, error) {
	data, err := r.client.Get(ctx, r.key(deviceID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get snapshot")
	}

	return decode(data)
}

func (r *redisRepository) Delete(ctx context.Context, deviceID string) error {
	if err := r.client.Del(ctx, r.key(deviceID)).Err(); err != nil {
		return errors.Wrap(err, "redis delete snapshot")
	}

	return nil
}
