// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"audiotour/internal/domain/entity"
	"audiotour/internal/domain/repository"
	"audiotour/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// FindRouteByID retrieves a route and its stops by route id.
func (repo *routeRepository) FindRouteByID(ctx context.Context, id string) (*entity.Route, error) {
	var routeM model.RouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Stops", orderedStops).
		Where("id = ?", id).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by ID")
	}

	return toRouteDomain(&routeM), nil
}

// ListRoutes retrieves every route with its stops, sorted by name.
func (repo *routeRepository) ListRoutes(ctx context.Context) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	if err := repo.db.WithContext(ctx).
		Preload("Stops", orderedStops).
		Order("name ASC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	routes := make([]*entity.Route, 0, len(routeModels))
	for _, routeM := range routeModels {
		routes = append(routes, toRouteDomain(routeM))
	}

	return routes, nil
}

func orderedStops(db *gorm.DB) *gorm.DB {
	return db.Order("stop_order ASC")
}

// --- Mapper Functions ---

func toRouteDomain(data *model.RouteModel) *entity.Route {
	if data == nil {
		return nil
	}

	stops := make([]entity.Stop, 0, len(data.Stops))
	for _, stopM := range data.Stops {
		stops = append(stops, toStopDomain(stopM))
	}
	entity.SortStopsByOrder(stops)

	return &entity.Route{
		ID:          data.ID,
		Name:        data.Name,
		City:        data.City,
		Description: data.Description,
		Stops:       stops,
	}
}

func toStopDomain(data model.StopModel) entity.Stop {
	return entity.Stop{
		ID:    data.ID,
		Name:  data.Name,
		Order: data.Position,
		Coordinate: entity.Coordinate{
			Lat: data.Latitude,
			Lng: data.Longitude,
		},
		TriggerRadiusMeters: data.TriggerRadiusMeters,
		NarrationText:       data.NarrationText,
	}
}
