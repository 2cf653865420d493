package repository

import (
	"context"

	"audiotour/internal/domain/entity"
	"audiotour/internal/errors"
)

// ErrRouteNotFound is returned when the catalog has no route with the requested id.
var ErrRouteNotFound = errors.New("route not found")

// RouteRepository is the read-only route catalog.
// Implementations return stops sorted by Order.
type RouteRepository interface {
	// FindRouteByID returns the route and its ordered stops.
	FindRouteByID(ctx context.Context, routeID string) (*entity.Route, error)

	// ListRoutes returns every route in the catalog.
	ListRoutes(ctx context.Context) ([]*entity.Route, error)
}
