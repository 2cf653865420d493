// Package optimizer reorders route stops with a greedy nearest-neighbor pass.
//
// The result is not an optimal tour. It minimizes the next leg at each step,
// which is good enough for the small stop counts of a walking route and keeps
// the ordering deterministic: on exact ties the stop earlier in the input wins.
package optimizer

import (
	"math"

	"audiotour/internal/domain/entity"
	"audiotour/internal/engine/geofence"
)

// DistanceFunc measures the distance in meters between two coordinates.
type DistanceFunc func(a, b entity.Coordinate) float64

// Result is an optimized visiting order.
type Result struct {
	Stops               []entity.Stop `json:"stops"`                 // Orders reassigned 0..N-1.
	WasOptimized        bool          `json:"was_optimized"`         // The id sequence differs from the input order.
	TotalDistanceMeters float64       `json:"total_distance_meters"` // Start to last stop along the greedy order.
}

// NearestStop describes the stop closest to the user for the optimization prompt.
type NearestStop struct {
	StopID         string  `json:"stop_id"`
	Name           string  `json:"name"`
	DistanceMeters float64 `json:"distance_meters"`
	OriginalOrder  int     `json:"original_order"`
}

// Optimizer runs nearest-neighbor ordering with a pluggable distance metric.
type Optimizer struct {
	distance DistanceFunc
}

// New creates an optimizer; a nil distance uses great-circle distance.
func New(distance DistanceFunc) *Optimizer {
	if distance == nil {
		distance = geofence.DistanceMeters
	}

	return &Optimizer{distance: distance}
}

// Optimize orders stops starting from start, always moving to the closest remaining stop.
func (o *Optimizer) Optimize(stops []entity.Stop, start entity.Coordinate) Result {
	input := entity.CloneStops(stops)
	entity.SortStopsByOrder(input)

	remaining := entity.CloneStops(input)
	result := make([]entity.Stop, 0, len(remaining))
	current := start
	total := 0.0

	for len(remaining) > 0 {
		bestIdx := -1
		bestDistance := math.Inf(1)
		for idx, stop := range remaining {
			// Strict comparison keeps the earliest stop on ties.
			if d := o.distance(current, stop.Coordinate); d < bestDistance {
				bestIdx = idx
				bestDistance = d
			}
		}
		if bestIdx < 0 {
			// Every distance was NaN; keep the rest in their current order.
			bestIdx = 0
			bestDistance = 0
		}

		nearest := remaining[bestIdx]
		nearest.Order = len(result)
		result = append(result, nearest)
		total += bestDistance
		current = nearest.Coordinate
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return Result{
		Stops:               result,
		WasOptimized:        !sameSequence(input, result),
		TotalDistanceMeters: total,
	}
}

// ShouldSuggestOptimization reports whether the stop nearest to the user is not
// the current first stop.
func (o *Optimizer) ShouldSuggestOptimization(stops []entity.Stop, user entity.Coordinate) bool {
	if len(stops) < 2 {
		return false
	}

	ordered := entity.CloneStops(stops)
	entity.SortStopsByOrder(ordered)

	nearest, ok := o.nearest(ordered, user)
	if !ok {
		return false
	}

	return nearest.ID != ordered[0].ID
}

// NearestStopInfo returns the stop closest to the user.
func (o *Optimizer) NearestStopInfo(stops []entity.Stop, user entity.Coordinate) (NearestStop, bool) {
	ordered := entity.CloneStops(stops)
	entity.SortStopsByOrder(ordered)

	nearest, ok := o.nearest(ordered, user)
	if !ok {
		return NearestStop{}, false
	}

	return NearestStop{
		StopID:         nearest.ID,
		Name:           nearest.Name,
		DistanceMeters: o.distance(user, nearest.Coordinate),
		OriginalOrder:  nearest.Order,
	}, true
}

// RouteDistance sums the legs from start through stops in their given order.
func (o *Optimizer) RouteDistance(stops []entity.Stop, start entity.Coordinate) float64 {
	total := 0.0
	current := start
	for _, stop := range stops {
		total += o.distance(current, stop.Coordinate)
		current = stop.Coordinate
	}

	return total
}

func (o *Optimizer) nearest(stops []entity.Stop, user entity.Coordinate) (entity.Stop, bool) {
	bestIdx := -1
	bestDistance := math.Inf(1)
	for idx, stop := range stops {
		if d := o.distance(user, stop.Coordinate); d < bestDistance {
			bestIdx = idx
			bestDistance = d
		}
	}
	if bestIdx < 0 {
		return entity.Stop{}, false
	}

	return stops[bestIdx], true
}

func sameSequence(a, b []entity.Stop) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if a[idx].ID != b[idx].ID {
			return false
		}
	}

	return true
}
