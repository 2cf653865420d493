package stops

import (
	"testing"

	"audiotour/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeStops() []entity.Stop {
	return []entity.Stop{
		{ID: "A", Name: "Cathedral", Order: 0, TriggerRadiusMeters: 30},
		{ID: "B", Name: "Market", Order: 1, TriggerRadiusMeters: 30},
		{ID: "C", Name: "Harbour", Order: 2, TriggerRadiusMeters: 30},
	}
}

func TestState_EmptyProgressIsZero(t *testing.T) {
	state := NewState(RestoreNatural, nil)

	assert.Equal(t, 0.0, state.Progress())
	assert.False(t, state.IsComplete())

	_, ok := state.NextStop()
	assert.False(t, ok)
}

func TestState_InitializeSortsAndRenumbers(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize([]entity.Stop{
		{ID: "C", Order: 9},
		{ID: "A", Order: 1},
		{ID: "B", Order: 5},
	})

	assert.Equal(t, []string{"A", "B", "C"}, state.Order())
	for idx, stop := range state.Stops() {
		assert.Equal(t, idx, stop.Order)
	}
}

func TestState_InitializeClearsVisited(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())
	state.MarkVisited("A")

	state.Initialize(threeStops())

	assert.False(t, state.IsVisited("A"))
	assert.Equal(t, 0, state.VisitedCount())
}

func TestState_MarkVisitedIsIdempotent(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())

	assert.True(t, state.MarkVisited("B"))
	visitedOnce := state.VisitedIDs()
	progressOnce := state.Progress()

	assert.False(t, state.MarkVisited("B"))
	assert.Equal(t, visitedOnce, state.VisitedIDs())
	assert.Equal(t, progressOnce, state.Progress())
}

func TestState_MarkVisitedIgnoresUnknownStop(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())

	assert.False(t, state.MarkVisited("missing"))
	assert.False(t, state.IsVisited("missing"))
	assert.Equal(t, 0.0, state.Progress())
}

func TestState_ProgressIsMonotonic(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())

	last := state.Progress()
	for _, id := range []string{"C", "C", "A", "missing", "B", "A"} {
		state.MarkVisited(id)
		current := state.Progress()
		assert.GreaterOrEqual(t, current, last)
		last = current
	}

	assert.Equal(t, 1.0, state.Progress())
	assert.True(t, state.IsComplete())

	state.Reset()
	assert.Equal(t, 0.0, state.Progress())
}

func TestState_NextStopAndUnvisited(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())
	state.MarkVisited("B")
	state.MarkVisited("C")

	next, ok := state.NextStop()
	require.True(t, ok)
	assert.Equal(t, "A", next.ID)
	assert.InDelta(t, 2.0/3.0, state.Progress(), 1e-9)
	assert.Equal(t, []string{"A"}, entity.StopIDs(state.UnvisitedStops()))

	state.MarkVisited("A")
	_, ok = state.NextStop()
	assert.False(t, ok)
	assert.Empty(t, state.UnvisitedStops())
}

func TestState_RestoreAppliesSnapshot(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())

	report := state.Restore([]string{"A", "B"}, []string{"B", "A", "C"})

	assert.False(t, report.UsedNaturalOrder)
	assert.Equal(t, []string{"B", "A", "C"}, state.Order())
	next, ok := state.NextStop()
	require.True(t, ok)
	assert.Equal(t, "C", next.ID)
	assert.Equal(t, 2, next.Order)
	assert.InDelta(t, 2.0/3.0, state.Progress(), 1e-9)
}

func TestState_RestoreRoundTrip(t *testing.T) {
	original := NewState(RestoreNatural, nil)
	original.Initialize(threeStops())
	original.Restore(nil, []string{"C", "A", "B"})
	original.MarkVisited("C")
	original.MarkVisited("B")

	visited, order := original.VisitedIDs(), original.Order()
	wantNext, _ := original.NextStop()

	fresh := NewState(RestoreNatural, nil)
	fresh.Initialize(threeStops())
	fresh.Restore(visited, order)

	gotNext, ok := fresh.NextStop()
	require.True(t, ok)
	assert.Equal(t, wantNext.ID, gotNext.ID)
	assert.ElementsMatch(t, visited, fresh.VisitedIDs())
	assert.Equal(t, order, fresh.Order())
}

func TestState_RestoreDropsUnknownIDs(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())

	report := state.Restore([]string{"A", "gone"}, []string{"C", "gone", "B", "A"})

	assert.Equal(t, []string{"gone"}, report.DroppedOrderIDs)
	assert.Equal(t, []string{"gone"}, report.DroppedVisitedIDs)
	assert.False(t, report.UsedNaturalOrder)
	assert.Equal(t, []string{"C", "B", "A"}, state.Order())
	assert.Equal(t, []string{"A"}, state.VisitedIDs())
}

func TestState_RestoreNaturalFallsBackOnPartialOrder(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())

	report := state.Restore(nil, []string{"C", "A"})

	assert.True(t, report.UsedNaturalOrder)
	assert.Equal(t, []string{"B"}, report.MissingOrderIDs)
	assert.Equal(t, []string{"A", "B", "C"}, state.Order())
}

func TestState_RestoreAppendKeepsMissingAtEnd(t *testing.T) {
	state := NewState(RestoreAppend, nil)
	state.Initialize(threeStops())

	report := state.Restore(nil, []string{"C", "A"})

	assert.False(t, report.UsedNaturalOrder)
	assert.Equal(t, []string{"C", "A", "B"}, state.Order())
	for idx, stop := range state.Stops() {
		assert.Equal(t, idx, stop.Order)
	}
}

func TestState_ResetIsRepeatable(t *testing.T) {
	state := NewState(RestoreNatural, nil)
	state.Initialize(threeStops())
	state.MarkVisited("A")

	state.Reset()
	state.Reset()

	assert.Equal(t, 0, state.Count())
	assert.Equal(t, 0, state.VisitedCount())
	assert.False(t, state.IsVisited("A"))
}
