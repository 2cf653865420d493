// Package snapshot implements SnapshotRepository on memory, Redis and blob storage.
package snapshot

import (
	"context"
	"sync"

	"audiotour/internal/domain/entity"
	"audiotour/internal/domain/repository"
)

type memoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]entity.ActiveRouteState
}

// NewMemoryRepository keeps snapshots in process memory; they do not survive a restart.
func NewMemoryRepository() repository.SnapshotRepository {
	return &memoryRepository{snapshots: make(map[string]entity.ActiveRouteState)}
}

func (r *memoryRepository) Save(_ context.Context, deviceID string, state *entity.ActiveRouteState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[deviceID] = cloneState(*state)

	return nil
}

func (r *memoryRepository) Load(_ context.Context, deviceID string) (*entity.ActiveRouteState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.snapshots[deviceID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}

	out := cloneState(state)

	return &out, nil
}

func (r *memoryRepository) Delete(_ context.Context, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, deviceID)

	return nil
}

func cloneState(state entity.ActiveRouteState) entity.ActiveRouteState {
	state.VisitedStopIDs = append([]string(nil), state.VisitedStopIDs...)
	state.StopOrder = append([]string(nil), state.StopOrder...)

	return state
}
