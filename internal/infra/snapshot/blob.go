package snapshot

import (
	"context"

	"audiotour/internal/domain/entity"
	"audiotour/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

type blobRepository struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobRepository stores each snapshot as a JSON object named prefix+deviceID+".json".
func NewBlobRepository(bucket *blob.Bucket, prefix string) repository.SnapshotRepository {
	return &blobRepository{bucket: bucket, prefix: prefix}
}

func (r *blobRepository) key(deviceID string) string {
	return r.prefix + deviceID + ".json"
}

func (r *blobRepository) Save(ctx context.Context, deviceID string, state *entity.ActiveRouteState) error {
	data, err := encode(state)
	if err != nil {
		return err
	}

	if err := r.bucket.WriteAll(ctx, r.key(deviceID), data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrap(err, "write snapshot object")
	}

	return nil
}

func (r *blobRepository) Load(ctx context.Context, deviceID string) (*entity.ActiveRouteState, error) {
	data, err := r.bucket.ReadAll(ctx, r.key(deviceID))
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read snapshot object")
	}

	return decode(data)
}

func (r *blobRepository) Delete(ctx context.Context, deviceID string) error {
	err := r.bucket.Delete(ctx, r.key(deviceID))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete snapshot object")
	}

	return nil
}
