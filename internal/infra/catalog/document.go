package catalog

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"audiotour/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// DefaultTriggerRadiusMeters applies to stops stored without a radius.
const DefaultTriggerRadiusMeters = 30.0

// document is the JSON catalog layout: {"routes": [Route...]}.
type document struct {
	Routes []entity.Route `json:"routes"`
}

func parseDocument(key string, data []byte, logger *slog.Logger) ([]entity.Route, error) {
	if strings.HasSuffix(strings.ToLower(key), ".geojson") {
		return parseGeoJSON(data, logger)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode catalog document")
	}

	return normalizeRoutes(doc.Routes, logger)
}

// parseGeoJSON reads a FeatureCollection where every Point feature is a stop
// and route metadata is carried in the feature properties.
func parseGeoJSON(data []byte, logger *slog.Logger) ([]entity.Route, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode catalog geojson")
	}

	byID := make(map[string]*entity.Route)
	var order []string
	for idx, feature := range fc.Features {
		point, ok := feature.Geometry.(orb.Point)
		if !ok {
			logger.Warn("Skipping non-point catalog feature", slog.Int("index", idx))

			continue
		}

		props := feature.Properties
		routeID := propString(props, "route_id", "")
		if routeID == "" {
			return nil, errors.Errorf("feature %d has no route_id", idx)
		}

		route, exists := byID[routeID]
		if !exists {
			route = &entity.Route{
				ID:          routeID,
				Name:        propString(props, "route_name", routeID),
				City:        propString(props, "city", ""),
				Description: propString(props, "route_description", ""),
			}
			byID[routeID] = route
			order = append(order, routeID)
		}

		route.Stops = append(route.Stops, entity.Stop{
			ID:                  propString(props, "id", ""),
			Name:                propString(props, "name", ""),
			Order:               int(propFloat(props, "order", float64(len(route.Stops)))),
			Coordinate:          entity.CoordinateFromPoint(point),
			TriggerRadiusMeters: propFloat(props, "trigger_radius_meters", 0),
			NarrationText:       propString(props, "narration_text", ""),
		})
	}

	routes := make([]entity.Route, 0, len(order))
	for _, id := range order {
		routes = append(routes, *byID[id])
	}

	return normalizeRoutes(routes, logger)
}

// propString reads a string property; missing or mistyped values yield def.
func propString(props geojson.Properties, key, def string) string {
	if v, ok := props[key].(string); ok {
		return v
	}

	return def
}

func propFloat(props geojson.Properties, key string, def float64) float64 {
	if v, ok := props[key].(float64); ok {
		return v
	}

	return def
}

// normalizeRoutes validates ids and coordinates, fills default radii and sorts
// stops by order. Routes are returned sorted by name.
func normalizeRoutes(routes []entity.Route, logger *slog.Logger) ([]entity.Route, error) {
	seenRoutes := make(map[string]struct{}, len(routes))
	for idx := range routes {
		route := &routes[idx]
		if route.ID == "" {
			return nil, errors.Errorf("route %d has no id", idx)
		}
		if _, dup := seenRoutes[route.ID]; dup {
			return nil, errors.Errorf("duplicate route id %q", route.ID)
		}
		seenRoutes[route.ID] = struct{}{}

		seenStops := make(map[string]struct{}, len(route.Stops))
		for stopIdx := range route.Stops {
			stop := &route.Stops[stopIdx]
			if stop.ID == "" {
				return nil, errors.Errorf("route %q: stop %d has no id", route.ID, stopIdx)
			}
			if _, dup := seenStops[stop.ID]; dup {
				return nil, errors.Errorf("route %q: duplicate stop id %q", route.ID, stop.ID)
			}
			seenStops[stop.ID] = struct{}{}

			if !stop.Coordinate.IsValid() {
				return nil, errors.Errorf("route %q: stop %q has an invalid coordinate", route.ID, stop.ID)
			}
			if stop.TriggerRadiusMeters <= 0 {
				logger.Warn("Stop has no trigger radius, using default",
					slog.String("route_id", route.ID),
					slog.String("stop_id", stop.ID),
					slog.Float64("radius_meters", DefaultTriggerRadiusMeters),
				)
				stop.TriggerRadiusMeters = DefaultTriggerRadiusMeters
			}
		}
		entity.SortStopsByOrder(route.Stops)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Name < routes[j].Name
	})

	return routes, nil
}
