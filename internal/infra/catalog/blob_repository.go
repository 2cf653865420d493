// Package catalog implements the read-only RouteRepository.
package catalog

import (
	"context"
	"log/slog"
	"sync"

	"audiotour/internal/domain/entity"
	"audiotour/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// blobRepository serves routes from a single catalog object in a bucket.
// The object is re-read when its ETag changes.
type blobRepository struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger

	mu     sync.Mutex
	etag   string
	routes []entity.Route
}

// NewBlobRepository creates a catalog backed by the object at key.
func NewBlobRepository(bucket *blob.Bucket, key string, logger *slog.Logger) repository.RouteRepository {
	return &blobRepository{
		bucket: bucket,
		key:    key,
		logger: logger.With(slog.String("component", "blob_catalog")),
	}
}

func (r *blobRepository) FindRouteByID(ctx context.Context, id string) (*entity.Route, error) {
	routes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for idx := range routes {
		if routes[idx].ID == id {
			return cloneRoute(routes[idx]), nil
		}
	}

	return nil, repository.ErrRouteNotFound
}

func (r *blobRepository) ListRoutes(ctx context.Context) ([]*entity.Route, error) {
	routes, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Route, 0, len(routes))
	for idx := range routes {
		out = append(out, cloneRoute(routes[idx]))
	}

	return out, nil
}

func (r *blobRepository) load(ctx context.Context) ([]entity.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	attrs, err := r.bucket.Attributes(ctx, r.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, errors.Errorf("catalog object %q not found", r.key)
	}
	if err != nil {
		return nil, errors.Wrap(err, "stat catalog object")
	}
	if r.routes != nil && attrs.ETag != "" && attrs.ETag == r.etag {
		return r.routes, nil
	}

	data, err := r.bucket.ReadAll(ctx, r.key)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog object")
	}

	routes, err := parseDocument(r.key, data, r.logger)
	if err != nil {
		return nil, err
	}

	r.routes = routes
	r.etag = attrs.ETag
	r.logger.Info("Catalog loaded", slog.String("key", r.key), slog.Int("routes", len(routes)))

	return r.routes, nil
}

func cloneRoute(route entity.Route) *entity.Route {
	route.Stops = entity.CloneStops(route.Stops)

	return &route
}
