package repository

import (
	"context"

	"audiotour/internal/domain/entity"
	"audiotour/internal/errors"
)

// ErrSnapshotNotFound is returned when no active-route snapshot is stored for the device.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository stores the ActiveRouteState blob for one device.
// Writes are last-writer-wins.
type SnapshotRepository interface {
	// Save overwrites the stored snapshot.
	Save(ctx context.Context, deviceID string, state *entity.ActiveRouteState) error

	// Load returns the stored snapshot or ErrSnapshotNotFound.
	Load(ctx context.Context, deviceID string) (*entity.ActiveRouteState, error)

	// Delete removes the snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, deviceID string) error
}
