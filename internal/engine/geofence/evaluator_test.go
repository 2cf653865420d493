package geofence

import (
	"testing"

	"audiotour/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orb measures on a 6378137 m sphere
const degPerMeter = 1.0 / 111_319.49

var user = entity.Coordinate{Lat: 25.0400, Lng: 121.5600}

func offsetNorth(c entity.Coordinate, meters float64) entity.Coordinate {
	return entity.Coordinate{Lat: c.Lat + meters*degPerMeter, Lng: c.Lng}
}

type fakeSource struct {
	stops   []entity.Stop
	visited map[string]bool
}

func (f *fakeSource) Stops() []entity.Stop {
	return f.stops
}

// UnvisitedStops deliberately returns stops in slice order, not route order.
func (f *fakeSource) UnvisitedStops() []entity.Stop {
	var out []entity.Stop
	for _, stop := range f.stops {
		if !f.visited[stop.ID] {
			out = append(out, stop)
		}
	}

	return out
}

func (f *fakeSource) IsVisited(id string) bool {
	return f.visited[id]
}

func overlappingSource() *fakeSource {
	return &fakeSource{
		stops: []entity.Stop{
			{ID: "C", Order: 2, Coordinate: offsetNorth(user, -20), TriggerRadiusMeters: 30},
			{ID: "A", Order: 0, Coordinate: offsetNorth(user, 500), TriggerRadiusMeters: 30},
			{ID: "B", Order: 1, Coordinate: offsetNorth(user, 20), TriggerRadiusMeters: 30},
		},
		visited: map[string]bool{},
	}
}

func TestEvaluator_TriggersInAscendingOrder(t *testing.T) {
	evaluator := NewEvaluator(Config{MinMovementMeters: 10})

	result := evaluator.Evaluate(user, overlappingSource())

	require.True(t, result.Evaluated)
	assert.Equal(t, []string{"B", "C"}, entity.StopIDs(result.Triggered))
}

func TestEvaluator_SkipsVisitedStops(t *testing.T) {
	evaluator := NewEvaluator(Config{})
	source := overlappingSource()
	source.visited["B"] = true

	result := evaluator.Evaluate(user, source)

	assert.Equal(t, []string{"C"}, entity.StopIDs(result.Triggered))
}

func TestEvaluator_BoundaryIsInclusive(t *testing.T) {
	evaluator := NewEvaluator(Config{})
	stop := entity.Stop{ID: "edge", Coordinate: offsetNorth(user, 30), TriggerRadiusMeters: 30}
	source := &fakeSource{stops: []entity.Stop{stop}, visited: map[string]bool{}}

	exact := DistanceMeters(user, stop.Coordinate)
	source.stops[0].TriggerRadiusMeters = exact

	result := evaluator.Evaluate(user, source)

	assert.Len(t, result.Triggered, 1)
}

func TestEvaluator_MovementThrottle(t *testing.T) {
	evaluator := NewEvaluator(Config{MinMovementMeters: 10})
	source := &fakeSource{visited: map[string]bool{}}

	first := evaluator.Evaluate(user, source)
	assert.True(t, first.Evaluated)

	small := evaluator.Evaluate(offsetNorth(user, 5), source)
	assert.False(t, small.Evaluated)

	// Throttle distance is measured from the last evaluated sample, not the last sample.
	far := evaluator.Evaluate(offsetNorth(user, 12), source)
	assert.True(t, far.Evaluated)
}

func TestEvaluator_ThrottledSampleDoesNotTrigger(t *testing.T) {
	evaluator := NewEvaluator(Config{MinMovementMeters: 50})
	source := &fakeSource{
		stops:   []entity.Stop{{ID: "A", Coordinate: offsetNorth(user, 40), TriggerRadiusMeters: 15}},
		visited: map[string]bool{},
	}

	assert.Empty(t, evaluator.Evaluate(user, source).Triggered)

	throttled := evaluator.Evaluate(offsetNorth(user, 30), source)
	assert.False(t, throttled.Evaluated)
	assert.Empty(t, throttled.Triggered)

	evaluator.Reset()
	assert.Equal(t, []string{"A"}, entity.StopIDs(evaluator.Evaluate(offsetNorth(user, 30), source).Triggered))
}

func TestEvaluator_BoundingBoxRejectsFarStops(t *testing.T) {
	evaluator := NewEvaluator(Config{ProximityMarginMeters: 50})
	source := &fakeSource{
		stops: []entity.Stop{
			{ID: "near", Coordinate: offsetNorth(user, 60), TriggerRadiusMeters: 30},
			{ID: "far", Coordinate: offsetNorth(user, 2000), TriggerRadiusMeters: 30},
			{ID: "east", Coordinate: entity.Coordinate{Lat: user.Lat, Lng: user.Lng + 0.05}, TriggerRadiusMeters: 30},
		},
		visited: map[string]bool{},
	}

	result := evaluator.Evaluate(user, source)

	assert.Equal(t, 1, result.Candidates)
	assert.Empty(t, result.Triggered)
}

func TestEvaluator_NearbyIncludesVisitedStops(t *testing.T) {
	evaluator := NewEvaluator(Config{ProximityMarginMeters: 50})
	source := overlappingSource()
	source.visited["C"] = true

	result := evaluator.Evaluate(user, source)

	require.Len(t, result.Nearby, 2)
	assert.True(t, result.NearbyChanged)
	ids := []string{result.Nearby[0].Stop.ID, result.Nearby[1].Stop.ID}
	assert.ElementsMatch(t, []string{"B", "C"}, ids)
	for _, n := range result.Nearby {
		assert.Equal(t, n.Stop.ID == "C", n.Visited)
	}
}

func TestEvaluator_NearbyDecoupledFromThrottle(t *testing.T) {
	evaluator := NewEvaluator(Config{MinMovementMeters: 100, ProximityMarginMeters: 10})
	source := &fakeSource{
		stops:   []entity.Stop{{ID: "A", Coordinate: offsetNorth(user, 60), TriggerRadiusMeters: 5}},
		visited: map[string]bool{},
	}

	assert.Empty(t, evaluator.Evaluate(user, source).Nearby)

	moved := evaluator.Evaluate(offsetNorth(user, 50), source)
	assert.False(t, moved.Evaluated)
	assert.Len(t, moved.Nearby, 1)
	assert.True(t, moved.NearbyChanged)
}

func TestEvaluator_NearbyGatedByThrottle(t *testing.T) {
	evaluator := NewEvaluator(Config{MinMovementMeters: 100, ProximityMarginMeters: 10, GateNearbyByThrottle: true})
	source := &fakeSource{
		stops:   []entity.Stop{{ID: "A", Coordinate: offsetNorth(user, 60), TriggerRadiusMeters: 5}},
		visited: map[string]bool{},
	}

	evaluator.Evaluate(user, source)

	moved := evaluator.Evaluate(offsetNorth(user, 50), source)
	assert.False(t, moved.Evaluated)
	assert.Nil(t, moved.Nearby)
	assert.False(t, moved.NearbyChanged)
}

func TestBoundAround(t *testing.T) {
	for _, center := range []entity.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 25.04, Lng: 121.56},
		{Lat: 69.65, Lng: 18.96},
	} {
		bound := BoundAround(center, 100)

		north := offsetNorth(center, 99)
		assert.True(t, InBound(bound, north.Point()))

		// 99 m east along the parallel
		east := entity.Coordinate{Lat: center.Lat, Lng: center.Lng}
		for DistanceMeters(center, east) < 99 {
			east.Lng += 0.000001
		}
		assert.True(t, InBound(bound, east.Point()))

		assert.False(t, InBound(bound, offsetNorth(center, 250).Point()))
	}
}

func TestBoundAround_AcrossAntimeridian(t *testing.T) {
	west := entity.Coordinate{Lat: -16.8, Lng: 179.9999}
	east := entity.Coordinate{Lat: -16.8, Lng: -179.9999}
	require.Less(t, DistanceMeters(west, east), 30.0)

	assert.True(t, InBound(BoundAround(west, 30), east.Point()))
	assert.True(t, InBound(BoundAround(east, 30), west.Point()))
	assert.False(t, InBound(BoundAround(west, 30), entity.Coordinate{Lat: -16.8, Lng: 179.99}.Point()))
}

func TestEvaluator_TriggersAcrossAntimeridian(t *testing.T) {
	evaluator := NewEvaluator(Config{})
	location := entity.Coordinate{Lat: -16.8, Lng: 179.9999}
	source := &fakeSource{
		stops: []entity.Stop{
			{ID: "X", Coordinate: entity.Coordinate{Lat: -16.8, Lng: -179.9999}, TriggerRadiusMeters: 30},
		},
		visited: map[string]bool{},
	}

	result := evaluator.Evaluate(location, source)

	assert.Equal(t, []string{"X"}, entity.StopIDs(result.Triggered))
}

func TestDistanceMeters(t *testing.T) {
	taipei101 := entity.Coordinate{Lat: 25.0330, Lng: 121.5654}
	nearby := entity.Coordinate{Lat: 25.0425, Lng: 121.5649}

	assert.InDelta(t, 1057, DistanceMeters(taipei101, nearby), 10)
	assert.Equal(t, 0.0, DistanceMeters(taipei101, taipei101))
}
