// Package storage opens gocloud blob buckets from URLs.
package storage

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes: file://, mem://, gs://, s3://
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// OpenBucket opens the bucket at url and closes it when the application stops.
func OpenBucket(ctx context.Context, lc fx.Lifecycle, url string, logger *slog.Logger) (*blob.Bucket, error) {
	if url == "" {
		return nil, errors.New("bucket URL is required")
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing bucket", slog.String("url", url))

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}
