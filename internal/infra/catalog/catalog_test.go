package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"audiotour/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const catalogJSON = `{
  "routes": [
    {
      "id": "old-town",
      "name": "Old Town",
      "city": "Porto",
      "stops": [
        {"id": "cathedral", "name": "Cathedral", "order": 1, "coordinate": {"latitude": 41.1429, "longitude": -8.6111}, "trigger_radius_meters": 40, "narration_text": "The cathedral."},
        {"id": "station", "name": "Station", "order": 0, "coordinate": {"latitude": 41.1456, "longitude": -8.6107}, "narration_text": "The station."}
      ]
    },
    {
      "id": "harbour",
      "name": "Harbour",
      "city": "Porto",
      "stops": [
        {"id": "pier", "name": "Pier", "order": 0, "coordinate": {"latitude": 41.1400, "longitude": -8.6130}, "trigger_radius_meters": 25}
      ]
    }
  ]
}`

const catalogGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-8.6111, 41.1429]},
     "properties": {"route_id": "old-town", "route_name": "Old Town", "city": "Porto", "id": "cathedral", "name": "Cathedral", "order": 1, "trigger_radius_meters": 40}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[-8.6111, 41.1429], [-8.6107, 41.1456]]},
     "properties": {"route_id": "old-town"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [-8.6107, 41.1456]},
     "properties": {"route_id": "old-town", "id": "station", "name": "Station", "order": 0, "narration_text": "The station."}}
  ]
}`

func newTestBucket(t *testing.T) *blob.Bucket {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return bucket
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobRepository_JSON(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "routes.json", []byte(catalogJSON), nil))

	repo := NewBlobRepository(bucket, "routes.json", discardLogger())

	routes, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.Equal(t, "harbour", routes[0].ID)
	assert.Equal(t, "old-town", routes[1].ID)

	route, err := repo.FindRouteByID(ctx, "old-town")
	require.NoError(t, err)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, "station", route.Stops[0].ID)
	assert.InDelta(t, DefaultTriggerRadiusMeters, route.Stops[0].TriggerRadiusMeters, 1e-9)
	assert.InDelta(t, 40.0, route.Stops[1].TriggerRadiusMeters, 1e-9)
	assert.InDelta(t, 41.1456, route.Stops[0].Coordinate.Lat, 1e-9)
}

func TestBlobRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "routes.json", []byte(catalogJSON), nil))
	repo := NewBlobRepository(bucket, "routes.json", discardLogger())

	route, err := repo.FindRouteByID(ctx, "old-town")
	require.NoError(t, err)
	route.Stops[0].Name = "changed"

	again, err := repo.FindRouteByID(ctx, "old-town")
	require.NoError(t, err)
	assert.Equal(t, "Station", again.Stops[0].Name)
}

func TestBlobRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "routes.json", []byte(catalogJSON), nil))
	repo := NewBlobRepository(bucket, "routes.json", discardLogger())

	_, err := repo.FindRouteByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestBlobRepository_MissingObject(t *testing.T) {
	repo := NewBlobRepository(newTestBucket(t), "routes.json", discardLogger())

	_, err := repo.ListRoutes(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrRouteNotFound)
}

func TestBlobRepository_ReloadsOnChange(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "routes.json", []byte(catalogJSON), nil))
	repo := NewBlobRepository(bucket, "routes.json", discardLogger())

	routes, err := repo.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 2)

	updated := `{"routes": [{"id": "solo", "name": "Solo", "stops": [{"id": "s1", "name": "S1", "order": 0, "coordinate": {"latitude": 1, "longitude": 1}}]}]}`
	require.NoError(t, bucket.WriteAll(ctx, "routes.json", []byte(updated), nil))

	routes, err = repo.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "solo", routes[0].ID)
}

func TestBlobRepository_GeoJSON(t *testing.T) {
	ctx := context.Background()
	bucket := newTestBucket(t)
	require.NoError(t, bucket.WriteAll(ctx, "routes.geojson", []byte(catalogGeoJSON), nil))
	repo := NewBlobRepository(bucket, "routes.geojson", discardLogger())

	route, err := repo.FindRouteByID(ctx, "old-town")
	require.NoError(t, err)
	assert.Equal(t, "Old Town", route.Name)
	assert.Equal(t, "Porto", route.City)
	require.Len(t, route.Stops, 2)
	assert.Equal(t, "station", route.Stops[0].ID)
	assert.Equal(t, "The station.", route.Stops[0].NarrationText)
	assert.InDelta(t, 41.1456, route.Stops[0].Coordinate.Lat, 1e-9)
	assert.InDelta(t, -8.6107, route.Stops[0].Coordinate.Lng, 1e-9)
	assert.InDelta(t, 40.0, route.Stops[1].TriggerRadiusMeters, 1e-9)
}

func TestParseDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		data string
	}{
		{name: "malformed json", key: "routes.json", data: `{"routes": [`},
		{name: "route without id", key: "routes.json", data: `{"routes": [{"name": "x"}]}`},
		{name: "duplicate route", key: "routes.json", data: `{"routes": [{"id": "a"}, {"id": "a"}]}`},
		{
			name: "duplicate stop",
			key:  "routes.json",
			data: `{"routes": [{"id": "a", "stops": [
				{"id": "s", "coordinate": {"latitude": 1, "longitude": 1}},
				{"id": "s", "coordinate": {"latitude": 2, "longitude": 2}}]}]}`,
		},
		{
			name: "invalid coordinate",
			key:  "routes.json",
			data: `{"routes": [{"id": "a", "stops": [{"id": "s", "coordinate": {"latitude": 95, "longitude": 1}}]}]}`,
		},
		{
			name: "feature without route",
			key:  "routes.geojson",
			data: `{"type": "FeatureCollection", "features": [{"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 1]}, "properties": {"id": "s"}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDocument(tt.key, []byte(tt.data), discardLogger())
			assert.Error(t, err)
		})
	}
}
