package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"audiotour/config"
	"audiotour/internal/domain/entity"
	domainerrors "audiotour/internal/domain/errors"
	"audiotour/internal/domain/repository"
	"audiotour/internal/domain/service"
	"audiotour/internal/engine/geofence"
	"audiotour/internal/engine/optimizer"
	"audiotour/internal/engine/progress"
	"audiotour/internal/engine/stops"
	"audiotour/internal/errors"
	"audiotour/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const eventBufferSize = 32

type tourService struct {
	routeRepo    repository.RouteRepository
	snapshotRepo repository.SnapshotRepository
	speech       service.SpeechEngine
	notifier     service.NotificationService
	publisher    service.EventPublisher
	optimizer    *optimizer.Optimizer
	config       *config.Config
	logger       *slog.Logger
	now          func() time.Time

	mu     sync.Mutex
	active *progress.Coordinator
}

// TourServiceParams holds dependencies for TourService, injected by Fx.
type TourServiceParams struct {
	fx.In

	RouteRepo    repository.RouteRepository
	SnapshotRepo repository.SnapshotRepository
	Speech       service.SpeechEngine
	Notifier     service.NotificationService `optional:"true"`
	Publisher    service.EventPublisher      `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// TourService is the session service plus the shutdown hook used by fx.
type TourService interface {
	usecase.TourUsecase

	// Shutdown closes the active session without deleting its snapshot, so the
	// route can be resumed after a restart.
	Shutdown(ctx context.Context) error
}

// NewTourService creates the tour session service.
func NewTourService(params TourServiceParams) TourService {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &tourService{
		routeRepo:    params.RouteRepo,
		snapshotRepo: params.SnapshotRepo,
		speech:       params.Speech,
		notifier:     params.Notifier,
		publisher:    params.Publisher,
		optimizer:    optimizer.New(nil),
		config:       params.Config,
		logger:       logger.With(slog.String("component", "tour_service")),
		now:          time.Now,
	}
}

// ListRoutes returns every route in the catalog.
func (s *tourService) ListRoutes(ctx context.Context) ([]*entity.Route, error) {
	routes, err := s.routeRepo.ListRoutes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list routes")
	}

	return routes, nil
}

// GetRoute returns a route with its stops sorted by order.
func (s *tourService) GetRoute(ctx context.Context, routeID string) (*entity.Route, error) {
	route, err := s.routeRepo.FindRouteByID(ctx, routeID)
	if err != nil {
		if errors.Is(err, repository.ErrRouteNotFound) {
			return nil, domainerrors.ErrRouteNotFound.WithDetails(routeID)
		}

		return nil, errors.Wrap(err, "failed to find route")
	}

	out := *route
	out.Stops = entity.CloneStops(route.Stops)
	entity.SortStopsByOrder(out.Stops)

	return &out, nil
}

// SuggestOptimization reports whether the user is closer to another stop than
// to the route's first one.
func (s *tourService) SuggestOptimization(ctx context.Context, routeID string, location entity.Coordinate) (*usecase.OptimizationSuggestion, error) {
	if !location.IsValid() {
		return nil, domainerrors.ErrLocationUnavailable
	}

	route, err := s.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}

	suggestion := &usecase.OptimizationSuggestion{
		RouteID:               route.ID,
		ShouldSuggest:         s.optimizer.ShouldSuggestOptimization(route.Stops, location),
		NaturalDistanceMeters: s.optimizer.RouteDistance(route.Stops, location),
	}
	if nearest, ok := s.optimizer.NearestStopInfo(route.Stops, location); ok {
		suggestion.Nearest = &nearest
	}
	suggestion.OptimizedDistanceMeters = s.optimizer.Optimize(route.Stops, location).TotalDistanceMeters

	return suggestion, nil
}

// StartTour activates a route, optionally reordering it from the start location.
func (s *tourService) StartTour(ctx context.Context, input usecase.StartTourInput) (*progress.Status, error) {
	if input.Optimize && input.StartLocation == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("startLocation is required to optimize")
	}
	if input.StartLocation != nil && !input.StartLocation.IsValid() {
		return nil, domainerrors.ErrLocationUnavailable
	}

	route, err := s.GetRoute(ctx, input.RouteID)
	if err != nil {
		return nil, err
	}
	if len(route.Stops) == 0 {
		return nil, domainerrors.ErrNoStops.WithDetails(route.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, domainerrors.ErrRouteAlreadyActive
	}

	session := progress.Session{
		HistoryID: uuid.NewString(),
		StartedAt: s.now().UTC(),
	}
	routeStops := route.Stops
	switch {
	case input.Optimize:
		result := s.optimizer.Optimize(route.Stops, *input.StartLocation)
		routeStops = result.Stops
		session.WasOptimized = result.WasOptimized
		session.TotalDistanceMeters = result.TotalDistanceMeters
	case input.StartLocation != nil:
		session.TotalDistanceMeters = s.optimizer.RouteDistance(route.Stops, *input.StartLocation)
	}

	coordinator := s.newCoordinator(route)
	if err := coordinator.Start(ctx, routeStops, session); err != nil {
		_ = coordinator.Close(ctx, false)

		return nil, err
	}
	s.active = coordinator

	status := coordinator.Status()

	return &status, nil
}

// ResumeCandidate reads the persisted snapshot once. Any read failure means
// nothing can be resumed.
func (s *tourService) ResumeCandidate(ctx context.Context) (*usecase.ResumeCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, domainerrors.ErrRouteAlreadyActive
	}

	snapshot, route, err := s.loadResumable(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ResumeCandidate{
		RouteID:      route.ID,
		RouteName:    route.Name,
		HistoryID:    snapshot.HistoryID,
		StartedAt:    snapshot.StartedAt,
		UpdatedAt:    snapshot.UpdatedAt,
		VisitedCount: countKnown(snapshot.VisitedStopIDs, route.Stops),
		TotalCount:   len(route.Stops),
		WasOptimized: snapshot.WasOptimized,
	}, nil
}

// ResumeTour rebuilds the session recorded in the snapshot.
func (s *tourService) ResumeTour(ctx context.Context) (*usecase.ResumeOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, domainerrors.ErrRouteAlreadyActive
	}

	snapshot, route, err := s.loadResumable(ctx)
	if err != nil {
		return nil, err
	}

	coordinator := s.newCoordinator(route)
	report, err := coordinator.Restore(ctx, route.Stops, snapshot)
	if err != nil {
		_ = coordinator.Close(ctx, false)

		return nil, err
	}
	s.active = coordinator

	status := coordinator.Status()

	return &usecase.ResumeOutput{Status: &status, Report: report}, nil
}

// DiscardResume deletes the stored snapshot.
func (s *tourService) DiscardResume(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return domainerrors.ErrRouteAlreadyActive
	}

	if err := s.snapshotRepo.Delete(ctx, s.deviceID()); err != nil {
		return domainerrors.NewPersistenceError(err, "delete snapshot")
	}

	return nil
}

// EndTour closes the active session and deletes its snapshot.
func (s *tourService) EndTour(ctx context.Context) error {
	s.mu.Lock()
	coordinator := s.active
	s.active = nil
	s.mu.Unlock()

	if coordinator == nil {
		return domainerrors.ErrNoActiveRoute
	}

	if err := coordinator.Close(ctx, true); err != nil {
		// The session is gone either way; a stale snapshot only means a
		// spurious resume offer.
		s.logger.Warn("Tour ended but snapshot was not deleted", slog.Any("error", err))
	}

	return nil
}

// UpdateLocation feeds a location sample to the active session.
func (s *tourService) UpdateLocation(ctx context.Context, sample entity.LocationSample) (*usecase.LocationUpdateOutput, error) {
	coordinator, err := s.current()
	if err != nil {
		return nil, err
	}

	result, err := coordinator.HandleLocation(ctx, sample)
	if err != nil {
		return nil, mapSessionError(err)
	}

	status := coordinator.Status()

	return &usecase.LocationUpdateOutput{
		Accepted:  result.Accepted,
		Evaluated: result.Evaluated,
		Triggered: result.Triggered,
		Nearby:    result.Nearby,
		Progress:  status.Progress,
		Completed: status.Completed,
	}, nil
}

// RegionEntered handles a native region wake-up for stopID.
func (s *tourService) RegionEntered(ctx context.Context, stopID string) (bool, error) {
	coordinator, err := s.current()
	if err != nil {
		return false, err
	}

	triggered, err := coordinator.HandleRegionEntered(ctx, stopID)

	return triggered, mapSessionError(err)
}

func (s *tourService) SkipNarration(_ context.Context) error {
	return s.narration((*progress.Coordinator).SkipNarration)
}

func (s *tourService) PauseNarration(_ context.Context) error {
	return s.narration((*progress.Coordinator).PauseNarration)
}

func (s *tourService) ResumeNarration(_ context.Context) error {
	return s.narration((*progress.Coordinator).ResumeNarration)
}

func (s *tourService) StopNarration(_ context.Context) error {
	return s.narration((*progress.Coordinator).StopNarration)
}

// Status returns the active session state.
func (s *tourService) Status(_ context.Context) (*progress.Status, error) {
	coordinator, err := s.current()
	if err != nil {
		return nil, err
	}

	status := coordinator.Status()

	return &status, nil
}

// MonitoredRegions returns the unvisited stops an OS region monitor should watch.
func (s *tourService) MonitoredRegions(_ context.Context) ([]entity.Stop, error) {
	coordinator, err := s.current()
	if err != nil {
		return nil, err
	}

	return coordinator.MonitoredRegions(s.config.Tracking.MaxMonitoredRegions), nil
}

// Subscribe streams events from the active session.
func (s *tourService) Subscribe(_ context.Context) (<-chan entity.Event, func(), error) {
	coordinator, err := s.current()
	if err != nil {
		return nil, nil, err
	}

	events, cancel := coordinator.Subscribe(eventBufferSize)

	return events, cancel, nil
}

// Shutdown closes the active session and keeps its snapshot.
func (s *tourService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	coordinator := s.active
	s.active = nil
	s.mu.Unlock()

	if coordinator == nil {
		return nil
	}

	return coordinator.Close(ctx, false)
}

func (s *tourService) newCoordinator(route *entity.Route) *progress.Coordinator {
	meta := *route
	meta.Stops = nil

	return progress.New(progress.Params{
		DeviceID:  s.deviceID(),
		Route:     meta,
		Speech:    s.speech,
		Notifier:  s.notifier,
		Publisher: s.publisher,
		Snapshots: s.snapshotRepo,
		Tracking: geofence.Config{
			MinMovementMeters:     s.config.Tracking.MinMovementMeters,
			ProximityMarginMeters: s.config.Tracking.ProximityMarginMeters,
			GateNearbyByThrottle:  s.config.Tracking.GateNearbyByThrottle,
		},
		RestorePolicy:     stops.RestorePolicy(s.config.Session.RestorePolicy),
		MaxAccuracyMeters: s.config.Tracking.AccuracyLimit(),
		Logger:            s.logger,
		Now:               s.now,
	})
}

// loadResumable reads the snapshot and the route it refers to. Failures are
// logged and reported as ErrNoResumableRoute.
func (s *tourService) loadResumable(ctx context.Context) (*entity.ActiveRouteState, *entity.Route, error) {
	snapshot, err := s.snapshotRepo.Load(ctx, s.deviceID())
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			s.logger.Warn("Failed to read route snapshot", slog.Any("error", err))
		}

		return nil, nil, domainerrors.ErrNoResumableRoute
	}

	route, err := s.GetRoute(ctx, snapshot.RouteID)
	if err != nil {
		s.logger.Warn("Snapshot refers to an unavailable route",
			slog.String("route_id", snapshot.RouteID),
			slog.Any("error", err),
		)

		return nil, nil, domainerrors.ErrNoResumableRoute
	}
	if len(route.Stops) == 0 {
		return nil, nil, domainerrors.ErrNoResumableRoute
	}

	return snapshot, route, nil
}

func (s *tourService) current() (*progress.Coordinator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, domainerrors.ErrNoActiveRoute
	}

	return s.active, nil
}

func (s *tourService) narration(action func(*progress.Coordinator) error) error {
	coordinator, err := s.current()
	if err != nil {
		return err
	}

	return mapSessionError(action(coordinator))
}

func (s *tourService) deviceID() string {
	return s.config.Session.DeviceID
}

// mapSessionError reports operations racing with EndTour as "no active route".
func mapSessionError(err error) error {
	if errors.Is(err, progress.ErrClosed) {
		return domainerrors.ErrNoActiveRoute
	}

	return err
}

func countKnown(ids []string, routeStops []entity.Stop) int {
	known := make(map[string]struct{}, len(routeStops))
	for _, stop := range routeStops {
		known[stop.ID] = struct{}{}
	}

	count := 0
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		count++
	}

	return count
}
