// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"audiotour/internal/domain/entity"
	"audiotour/internal/engine/optimizer"
	"audiotour/internal/engine/progress"
	"audiotour/internal/engine/stops"
)

// --- Input DTOs ---

// StartTourInput defines the data required to start a route.
type StartTourInput struct {
	RouteID       string
	Optimize      bool
	StartLocation *entity.Coordinate
}

// --- Output DTOs ---

// OptimizationSuggestion tells the client whether reordering the route is worth offering.
type OptimizationSuggestion struct {
	RouteID       string
	ShouldSuggest bool
	Nearest       *optimizer.NearestStop
	// Walking distances from the user's position in catalog and in optimized order, in meters.
	NaturalDistanceMeters   float64
	OptimizedDistanceMeters float64
}

// ResumeCandidate describes a persisted route that can be resumed.
type ResumeCandidate struct {
	RouteID      string
	RouteName    string
	HistoryID    string
	StartedAt    time.Time
	UpdatedAt    time.Time
	VisitedCount int
	TotalCount   int
	WasOptimized bool
}

// ResumeOutput returns the rebuilt session and how the snapshot was reconciled.
type ResumeOutput struct {
	Status *progress.Status
	Report stops.RestoreReport
}

// LocationUpdateOutput reports the effect of one location sample.
type LocationUpdateOutput struct {
	Accepted  bool
	Evaluated bool
	Triggered []entity.Stop
	Nearby    []entity.NearbyStop
	Progress  float64
	Completed bool
}

// TourUsecase drives the single active route session of this device.
type TourUsecase interface {
	ListRoutes(ctx context.Context) ([]*entity.Route, error)
	GetRoute(ctx context.Context, routeID string) (*entity.Route, error)
	SuggestOptimization(ctx context.Context, routeID string, location entity.Coordinate) (*OptimizationSuggestion, error)

	StartTour(ctx context.Context, input StartTourInput) (*progress.Status, error)
	ResumeCandidate(ctx context.Context) (*ResumeCandidate, error)
	ResumeTour(ctx context.Context) (*ResumeOutput, error)
	DiscardResume(ctx context.Context) error
	EndTour(ctx context.Context) error

	UpdateLocation(ctx context.Context, sample entity.LocationSample) (*LocationUpdateOutput, error)
	RegionEntered(ctx context.Context, stopID string) (bool, error)

	SkipNarration(ctx context.Context) error
	PauseNarration(ctx context.Context) error
	ResumeNarration(ctx context.Context) error
	StopNarration(ctx context.Context) error

	Status(ctx context.Context) (*progress.Status, error)
	MonitoredRegions(ctx context.Context) ([]entity.Stop, error)

	// Subscribe streams events of the active session until cancel is called or
	// the session ends.
	Subscribe(ctx context.Context) (<-chan entity.Event, func(), error)
}
