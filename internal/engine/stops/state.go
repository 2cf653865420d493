// Package stops holds the visit state of one active route session.
//
// State is not safe for concurrent use; the owning session serializes access.
package stops

import (
	"log/slog"

	"audiotour/internal/domain/entity"
)

// RestorePolicy decides what Restore does when a persisted order does not match
// the stops the route currently has.
type RestorePolicy string

const (
	// RestoreNatural accepts the persisted order only when, after dropping unknown
	// ids, it is a permutation of the known stops. Otherwise natural order is kept.
	RestoreNatural RestorePolicy = "natural"

	// RestoreAppend applies known ids in persisted order and appends the rest in
	// natural order.
	RestoreAppend RestorePolicy = "append"
)

// RestoreReport describes what Restore did with a snapshot.
type RestoreReport struct {
	DroppedOrderIDs   []string // ids in the persisted order unknown to the route
	DroppedVisitedIDs []string // visited ids unknown to the route
	MissingOrderIDs   []string // known ids absent from the persisted order
	UsedNaturalOrder  bool     // persisted order was rejected
}

// State is the authoritative visited-set and ordering for one route.
type State struct {
	stops   []entity.Stop
	visited map[string]struct{}
	policy  RestorePolicy
	logger  *slog.Logger
}

// NewState creates an empty state.
func NewState(policy RestorePolicy, logger *slog.Logger) *State {
	if policy == "" {
		policy = RestoreNatural
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &State{
		visited: make(map[string]struct{}),
		policy:  policy,
		logger:  logger,
	}
}

// Initialize replaces the stop set and clears the visited set.
// Stops are sorted by Order and renumbered densely from 0.
func (s *State) Initialize(stops []entity.Stop) {
	sorted := entity.CloneStops(stops)
	entity.SortStopsByOrder(sorted)
	renumber(sorted)

	s.stops = sorted
	s.visited = make(map[string]struct{})
}

// MarkVisited marks a stop visited. It returns true only on the first transition;
// unknown ids and repeated calls are no-ops.
func (s *State) MarkVisited(id string) bool {
	if _, ok := s.indexOf(id); !ok {
		return false
	}
	if _, ok := s.visited[id]; ok {
		return false
	}

	s.visited[id] = struct{}{}

	return true
}

// IsVisited reports whether the stop was visited this session.
func (s *State) IsVisited(id string) bool {
	_, ok := s.visited[id]

	return ok
}

// NextStop returns the lowest-order unvisited stop.
func (s *State) NextStop() (entity.Stop, bool) {
	for _, stop := range s.stops {
		if !s.IsVisited(stop.ID) {
			return stop, true
		}
	}

	return entity.Stop{}, false
}

// UnvisitedStops returns unvisited stops in order.
func (s *State) UnvisitedStops() []entity.Stop {
	unvisited := make([]entity.Stop, 0, len(s.stops)-len(s.visited))
	for _, stop := range s.stops {
		if !s.IsVisited(stop.ID) {
			unvisited = append(unvisited, stop)
		}
	}

	return unvisited
}

// Stops returns every stop in order.
func (s *State) Stops() []entity.Stop {
	return entity.CloneStops(s.stops)
}

// Stop looks up a stop by id.
func (s *State) Stop(id string) (entity.Stop, bool) {
	idx, ok := s.indexOf(id)
	if !ok {
		return entity.Stop{}, false
	}

	return s.stops[idx], true
}

// VisitedIDs returns visited ids in route order.
func (s *State) VisitedIDs() []string {
	ids := make([]string, 0, len(s.visited))
	for _, stop := range s.stops {
		if s.IsVisited(stop.ID) {
			ids = append(ids, stop.ID)
		}
	}

	return ids
}

// Order returns stop ids in current order.
func (s *State) Order() []string {
	return entity.StopIDs(s.stops)
}

// VisitedCount returns the number of visited stops.
func (s *State) VisitedCount() int {
	return len(s.visited)
}

// Count returns the number of stops.
func (s *State) Count() int {
	return len(s.stops)
}

// Progress returns visited/total in [0, 1]; 0 for an empty route.
func (s *State) Progress() float64 {
	if len(s.stops) == 0 {
		return 0
	}

	return float64(len(s.visited)) / float64(len(s.stops))
}

// IsComplete reports whether every stop of a non-empty route was visited.
func (s *State) IsComplete() bool {
	return len(s.stops) > 0 && len(s.visited) == len(s.stops)
}

// Restore rehydrates order and visited set from a snapshot without side effects.
func (s *State) Restore(visitedIDs, order []string) RestoreReport {
	reordered, report := s.applyOrder(order)
	renumber(reordered)
	s.stops = reordered

	s.visited = make(map[string]struct{}, len(visitedIDs))
	for _, id := range visitedIDs {
		if _, ok := s.indexOf(id); !ok {
			report.DroppedVisitedIDs = append(report.DroppedVisitedIDs, id)

			continue
		}
		s.visited[id] = struct{}{}
	}

	if len(report.DroppedOrderIDs) > 0 || len(report.DroppedVisitedIDs) > 0 || report.UsedNaturalOrder {
		s.logger.Warn("Snapshot does not match route stops",
			slog.String("policy", string(s.policy)),
			slog.Any("dropped_order_ids", report.DroppedOrderIDs),
			slog.Any("dropped_visited_ids", report.DroppedVisitedIDs),
			slog.Any("missing_order_ids", report.MissingOrderIDs),
			slog.Bool("used_natural_order", report.UsedNaturalOrder),
		)
	}

	return report
}

// Reset clears stops and visited ids. Safe to call repeatedly.
func (s *State) Reset() {
	s.stops = nil
	s.visited = make(map[string]struct{})
}

func (s *State) applyOrder(order []string) ([]entity.Stop, RestoreReport) {
	var report RestoreReport

	byID := make(map[string]entity.Stop, len(s.stops))
	for _, stop := range s.stops {
		byID[stop.ID] = stop
	}

	placed := make(map[string]struct{}, len(order))
	reordered := make([]entity.Stop, 0, len(s.stops))
	for _, id := range order {
		stop, ok := byID[id]
		if !ok {
			report.DroppedOrderIDs = append(report.DroppedOrderIDs, id)

			continue
		}
		if _, dup := placed[id]; dup {
			continue
		}
		placed[id] = struct{}{}
		reordered = append(reordered, stop)
	}

	for _, stop := range s.stops {
		if _, ok := placed[stop.ID]; !ok {
			report.MissingOrderIDs = append(report.MissingOrderIDs, stop.ID)
		}
	}

	if len(report.MissingOrderIDs) == 0 {
		return reordered, report
	}

	if s.policy == RestoreAppend {
		for _, stop := range s.stops {
			if _, ok := placed[stop.ID]; !ok {
				reordered = append(reordered, stop)
			}
		}

		return reordered, report
	}

	report.UsedNaturalOrder = true

	return entity.CloneStops(s.stops), report
}

func (s *State) indexOf(id string) (int, bool) {
	for idx, stop := range s.stops {
		if stop.ID == id {
			return idx, true
		}
	}

	return -1, false
}

func renumber(stops []entity.Stop) {
	for idx := range stops {
		stops[idx].Order = idx
	}
}
