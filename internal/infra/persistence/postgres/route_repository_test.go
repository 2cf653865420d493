package postgres

import (
	"testing"

	"audiotour/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRouteDomain(t *testing.T) {
	routeM := &model.RouteModel{
		ID:   "route-1",
		Name: "Harbour Walk",
		City: "Lisbon",
		Stops: []model.StopModel{
			{ID: "B", RouteID: "route-1", Name: "Bravo", Position: 1, Latitude: 38.70, Longitude: -9.14, TriggerRadiusMeters: 40},
			{ID: "A", RouteID: "route-1", Name: "Alpha", Position: 0, Latitude: 38.71, Longitude: -9.13, TriggerRadiusMeters: 25, NarrationText: "Welcome"},
		},
	}

	route := toRouteDomain(routeM)
	require.NotNil(t, route)
	assert.Equal(t, "Harbour Walk", route.Name)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, "A", route.Stops[0].ID)
	assert.InDelta(t, 38.71, route.Stops[0].Coordinate.Lat, 1e-9)
	assert.InDelta(t, -9.13, route.Stops[0].Coordinate.Lng, 1e-9)
	assert.Equal(t, "Welcome", route.Stops[0].NarrationText)
	assert.InDelta(t, 40.0, route.Stops[1].TriggerRadiusMeters, 1e-9)
}

func TestToRouteDomain_Nil(t *testing.T) {
	assert.Nil(t, toRouteDomain(nil))
}
