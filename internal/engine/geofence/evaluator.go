// Package geofence turns location samples into stop triggers.
package geofence

import (
	"sort"

	"audiotour/internal/domain/entity"
)

const (
	// DefaultMinMovementMeters is the throttle distance between full evaluations.
	DefaultMinMovementMeters = 10.0

	// DefaultProximityMarginMeters widens trigger radii for the nearby list.
	DefaultProximityMarginMeters = 50.0
)

// Config tunes the evaluator.
type Config struct {
	// MinMovementMeters skips full evaluation until the user moved this far
	// from the last evaluated location. Zero evaluates every sample.
	MinMovementMeters float64

	// ProximityMarginMeters is added to each radius for the nearby list and
	// for the bounding-box pre-filter.
	ProximityMarginMeters float64

	// GateNearbyByThrottle recomputes the nearby list only on full evaluations.
	GateNearbyByThrottle bool
}

// StopSource is the view of stop state the evaluator reads.
type StopSource interface {
	Stops() []entity.Stop
	UnvisitedStops() []entity.Stop
	IsVisited(id string) bool
}

// Result is the outcome of one sample.
type Result struct {
	// Evaluated is false when the movement throttle skipped trigger evaluation.
	Evaluated bool

	// Triggered holds newly reached stops in ascending Order.
	Triggered []entity.Stop

	// Nearby is the UI-facing list, nearest first. Nil when not recomputed.
	Nearby []entity.NearbyStop

	// NearbyChanged is true when the set of nearby stop ids changed.
	NearbyChanged bool

	// Candidates is the number of stops surviving the bounding-box filter.
	Candidates int
}

// Evaluator applies the movement throttle, the bounding-box pre-filter and the
// exact distance check to each sample. It is not safe for concurrent use.
type Evaluator struct {
	cfg           Config
	lastEvaluated *entity.Coordinate
	nearbyIDs     []string
}

// NewEvaluator creates an evaluator; non-positive margins fall back to defaults.
func NewEvaluator(cfg Config) *Evaluator {
	if cfg.MinMovementMeters < 0 {
		cfg.MinMovementMeters = DefaultMinMovementMeters
	}
	if cfg.ProximityMarginMeters <= 0 {
		cfg.ProximityMarginMeters = DefaultProximityMarginMeters
	}

	return &Evaluator{cfg: cfg}
}

// Evaluate processes one location sample against the current stop state.
func (e *Evaluator) Evaluate(location entity.Coordinate, source StopSource) Result {
	var result Result

	shouldEvaluate := e.shouldEvaluate(location)
	if shouldEvaluate || !e.cfg.GateNearbyByThrottle {
		result.Nearby = e.nearby(location, source)
		result.NearbyChanged = e.updateNearbyIDs(result.Nearby)
	}

	if !shouldEvaluate {
		return result
	}

	loc := location
	e.lastEvaluated = &loc
	result.Evaluated = true

	candidates := e.boundingBoxFilter(location, source.UnvisitedStops())
	result.Candidates = len(candidates)

	for _, stop := range candidates {
		if DistanceMeters(location, stop.Coordinate) <= stop.TriggerRadiusMeters {
			result.Triggered = append(result.Triggered, stop)
		}
	}

	entity.SortStopsByOrder(result.Triggered)

	return result
}

// Reset forgets the last evaluated location so the next sample is evaluated.
func (e *Evaluator) Reset() {
	e.lastEvaluated = nil
	e.nearbyIDs = nil
}

func (e *Evaluator) shouldEvaluate(location entity.Coordinate) bool {
	if e.lastEvaluated == nil {
		return true
	}

	return DistanceMeters(*e.lastEvaluated, location) >= e.cfg.MinMovementMeters
}

func (e *Evaluator) boundingBoxFilter(location entity.Coordinate, unvisited []entity.Stop) []entity.Stop {
	if len(unvisited) == 0 {
		return nil
	}

	maxRadius := 0.0
	for _, stop := range unvisited {
		maxRadius = max(maxRadius, stop.TriggerRadiusMeters)
	}

	bound := BoundAround(location, maxRadius+e.cfg.ProximityMarginMeters)

	candidates := make([]entity.Stop, 0, len(unvisited))
	for _, stop := range unvisited {
		if InBound(bound, stop.Coordinate.Point()) {
			candidates = append(candidates, stop)
		}
	}

	return candidates
}

func (e *Evaluator) nearby(location entity.Coordinate, source StopSource) []entity.NearbyStop {
	nearby := make([]entity.NearbyStop, 0)
	for _, stop := range source.Stops() {
		distance := DistanceMeters(location, stop.Coordinate)
		if distance <= stop.TriggerRadiusMeters+e.cfg.ProximityMarginMeters {
			nearby = append(nearby, entity.NearbyStop{
				Stop:           stop,
				DistanceMeters: distance,
				Visited:        source.IsVisited(stop.ID),
			})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby
}

func (e *Evaluator) updateNearbyIDs(nearby []entity.NearbyStop) bool {
	ids := make([]string, 0, len(nearby))
	for _, n := range nearby {
		ids = append(ids, n.Stop.ID)
	}
	sort.Strings(ids)

	changed := len(ids) != len(e.nearbyIDs)
	if !changed {
		for idx := range ids {
			if ids[idx] != e.nearbyIDs[idx] {
				changed = true

				break
			}
		}
	}

	e.nearbyIDs = ids

	return changed
}
