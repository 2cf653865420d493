package progress

import (
	"log/slog"
	"sync"

	"audiotour/internal/domain/entity"
)

// Hub fans session events out to subscribers without ever blocking the session.
type Hub struct {
	mu     sync.RWMutex
	subs   map[uint64]chan entity.Event
	nextID uint64
	closed bool
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uint64]chan entity.Event),
		logger: logger,
	}
}

// Subscribe registers a subscriber. The returned cancel func is idempotent.
// Subscribing to a closed hub returns an already-closed channel.
func (h *Hub) Subscribe(buffer int) (<-chan entity.Event, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan entity.Event, buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)

		return ch, func() {}
	}

	h.nextID++
	id := h.nextID
	h.subs[id] = ch

	return ch, func() { h.unsubscribe(id) }
}

// Broadcast delivers the event to every subscriber with room in its buffer.
func (h *Hub) Broadcast(event entity.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs {
		select {
		case ch <- event:
		default:
			h.logger.Debug("Dropping event for slow subscriber",
				slog.Uint64("subscriber_id", id),
				slog.String("event_type", string(event.Type)),
			)
		}
	}
}

// Count returns the number of live subscribers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

// Close closes every subscriber channel. Safe to call repeatedly.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subs {
		close(ch)
		delete(h.subs, id)
	}
}

func (h *Hub) unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		close(ch)
		delete(h.subs, id)
	}
}
