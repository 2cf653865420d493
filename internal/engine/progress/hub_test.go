package progress

import (
	"log/slog"
	"testing"

	"audiotour/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastSkipsFullSubscribers(t *testing.T) {
	hub := NewHub(slog.New(slog.DiscardHandler))

	slow, cancelSlow := hub.Subscribe(1)
	defer cancelSlow()
	fast, cancelFast := hub.Subscribe(4)
	defer cancelFast()

	hub.Broadcast(entity.Event{Type: entity.EventStopVisited})
	hub.Broadcast(entity.Event{Type: entity.EventRouteCompleted})

	require.Len(t, slow, 1)
	assert.Equal(t, entity.EventStopVisited, (<-slow).Type)

	require.Len(t, fast, 2)
	assert.Equal(t, entity.EventStopVisited, (<-fast).Type)
	assert.Equal(t, entity.EventRouteCompleted, (<-fast).Type)
}

func TestHub_CancelAndClose(t *testing.T) {
	hub := NewHub(slog.New(slog.DiscardHandler))

	events, cancel := hub.Subscribe(1)
	assert.Equal(t, 1, hub.Count())

	cancel()
	cancel()
	_, open := <-events
	assert.False(t, open)
	assert.Zero(t, hub.Count())

	other, _ := hub.Subscribe(1)
	hub.Close()
	hub.Close()
	_, open = <-other
	assert.False(t, open)

	late, _ := hub.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}
