// Package progress orchestrates one active route session: it turns trigger
// candidates into visit transitions, narration, notifications and snapshots.
package progress

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"audiotour/internal/domain/entity"
	domainerrors "audiotour/internal/domain/errors"
	"audiotour/internal/domain/repository"
	"audiotour/internal/domain/service"
	"audiotour/internal/engine/audio"
	"audiotour/internal/engine/geofence"
	"audiotour/internal/engine/stops"
	"audiotour/internal/errors"
)

const (
	defaultSideEffectTimeout = 5 * time.Second
	defaultSubscriberBuffer  = 16
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("tour session closed")

// Params configures a Coordinator.
type Params struct {
	DeviceID string
	Route    entity.Route

	Speech    service.SpeechEngine
	Notifier  service.NotificationService // optional
	Publisher service.EventPublisher      // optional
	Snapshots repository.SnapshotRepository

	Tracking          geofence.Config
	RestorePolicy     stops.RestorePolicy
	MaxAccuracyMeters float64 // 0 disables accuracy filtering

	Logger *slog.Logger
	Now    func() time.Time
}

// Session identifies a route activation.
type Session struct {
	HistoryID           string
	StartedAt           time.Time
	WasOptimized        bool
	TotalDistanceMeters float64
}

// LocationResult reports what one location sample did.
type LocationResult struct {
	Accepted  bool // false when the fix was too inaccurate to use
	Evaluated bool // false when the movement throttle skipped trigger evaluation
	Triggered []entity.Stop
	Nearby    []entity.NearbyStop
}

// StopStatus is a stop together with its derived visit flag.
type StopStatus struct {
	entity.Stop
	Visited bool `json:"visited"`
}

// Status is a read-only view of the session.
type Status struct {
	RouteID             string                `json:"route_id"`
	RouteName           string                `json:"route_name"`
	HistoryID           string                `json:"history_id"`
	StartedAt           time.Time             `json:"started_at"`
	WasOptimized        bool                  `json:"was_optimized"`
	TotalDistanceMeters float64               `json:"total_distance_meters"`
	Stops               []StopStatus          `json:"stops"`
	NextStop            *entity.Stop          `json:"next_stop,omitempty"`
	Progress            float64               `json:"progress"`
	VisitedCount        int                   `json:"visited_count"`
	TotalCount          int                   `json:"total_count"`
	Completed           bool                  `json:"completed"`
	Nearby              []entity.NearbyStop   `json:"nearby"`
	Playback            entity.PlaybackStatus `json:"playback"`
}

// Coordinator owns the StopsState, evaluator and sequencer of one route session
// and serializes every event source (location, region wake-ups, engine callbacks,
// user controls) through a single mutex.
type Coordinator struct {
	mu sync.Mutex

	deviceID string
	route    entity.Route
	session  Session

	state     *stops.State
	evaluator *geofence.Evaluator
	sequencer *audio.Sequencer

	notifier  service.NotificationService
	publisher service.EventPublisher
	snapshots repository.SnapshotRepository

	hub    *Hub
	outbox *outbox

	maxAccuracy float64
	nearby      []entity.NearbyStop
	completed   bool
	closed      bool

	logger *slog.Logger
	now    func() time.Time
}

// New creates an idle coordinator. Call Start or Restore before feeding it events.
func New(params Params) *Coordinator {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(
		slog.String("component", "progress"),
		slog.String("route_id", params.Route.ID),
	)

	now := params.Now
	if now == nil {
		now = time.Now
	}

	c := &Coordinator{
		deviceID:    params.DeviceID,
		route:       params.Route,
		state:       stops.NewState(params.RestorePolicy, logger),
		evaluator:   geofence.NewEvaluator(params.Tracking),
		notifier:    params.Notifier,
		publisher:   params.Publisher,
		snapshots:   params.Snapshots,
		hub:         NewHub(logger),
		outbox:      newOutbox(defaultOutboxSize, defaultSideEffectTimeout, logger),
		maxAccuracy: params.MaxAccuracyMeters,
		logger:      logger,
		now:         now,
	}
	// Engine completions may arrive synchronously from inside a sequencer call
	// that already holds mu, so they re-enter through their own goroutine.
	c.sequencer = audio.NewSequencer(params.Speech, func(token uint64, err error) {
		go c.playbackFinished(token, err)
	}, logger)

	return c
}

// Start initializes the session with stops in their final (possibly optimized)
// order and writes the first snapshot.
func (c *Coordinator) Start(ctx context.Context, routeStops []entity.Stop, session Session) error {
	if len(routeStops) == 0 {
		return domainerrors.ErrNoStops
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.session = session
	c.state.Initialize(routeStops)
	c.evaluator.Reset()
	c.nearby = nil
	c.completed = false

	c.persistSnapshot(ctx)
	c.logger.Info("Tour started",
		slog.String("history_id", session.HistoryID),
		slog.Int("stops", c.state.Count()),
		slog.Bool("was_optimized", session.WasOptimized),
	)

	return nil
}

// Restore rehydrates the session from a persisted snapshot. routeStops is the
// freshly fetched catalog stop list in natural order.
func (c *Coordinator) Restore(ctx context.Context, routeStops []entity.Stop, snapshot *entity.ActiveRouteState) (stops.RestoreReport, error) {
	if len(routeStops) == 0 {
		return stops.RestoreReport{}, domainerrors.ErrNoStops
	}
	if snapshot == nil {
		return stops.RestoreReport{}, domainerrors.ErrNoResumableRoute
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return stops.RestoreReport{}, ErrClosed
	}

	c.session = Session{
		HistoryID:           snapshot.HistoryID,
		StartedAt:           snapshot.StartedAt,
		WasOptimized:        snapshot.WasOptimized,
		TotalDistanceMeters: snapshot.TotalDistanceMeters,
	}
	c.state.Initialize(routeStops)
	report := c.state.Restore(snapshot.VisitedStopIDs, snapshot.StopOrder)
	c.evaluator.Reset()
	c.nearby = nil
	// A route that was already complete does not announce completion again.
	c.completed = c.state.IsComplete()

	c.persistSnapshot(ctx)
	c.logger.Info("Tour restored",
		slog.String("history_id", snapshot.HistoryID),
		slog.Int("visited", c.state.VisitedCount()),
		slog.Int("stops", c.state.Count()),
	)

	return report, nil
}

// HandleLocation feeds one location sample through the proximity evaluator and
// triggers every stop it reports, in ascending order.
func (c *Coordinator) HandleLocation(ctx context.Context, sample entity.LocationSample) (LocationResult, error) {
	if !sample.Coordinate.IsValid() || sample.AccuracyMeters < 0 || math.IsNaN(sample.AccuracyMeters) {
		return LocationResult{}, domainerrors.ErrLocationUnavailable
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return LocationResult{}, ErrClosed
	}

	if c.maxAccuracy > 0 && sample.AccuracyMeters > c.maxAccuracy {
		c.logger.Debug("Ignoring inaccurate location",
			slog.Float64("accuracy_meters", sample.AccuracyMeters),
		)

		return LocationResult{Nearby: cloneNearby(c.nearby)}, nil
	}

	result := c.evaluator.Evaluate(sample.Coordinate, c.state)
	if result.Nearby != nil {
		c.nearby = result.Nearby
	}

	triggered := make([]entity.Stop, 0, len(result.Triggered))
	for _, stop := range result.Triggered {
		if c.trigger(ctx, stop) {
			triggered = append(triggered, stop)
		}
	}

	c.refreshNearbyVisited()
	if result.NearbyChanged {
		c.emit(c.newEvent(entity.EventNearbyChanged, func(e *entity.Event) {
			e.Nearby = cloneNearby(c.nearby)
		}))
	}

	return LocationResult{
		Accepted:  true,
		Evaluated: result.Evaluated,
		Triggered: triggered,
		Nearby:    cloneNearby(c.nearby),
	}, nil
}

// HandleRegionEntered treats a native region wake-up as a trigger candidate for
// stopID. It returns false when the stop had already been visited.
func (c *Coordinator) HandleRegionEntered(ctx context.Context, stopID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false, ErrClosed
	}

	stop, ok := c.state.Stop(stopID)
	if !ok {
		return false, domainerrors.ErrStopNotFound.WithDetails(stopID)
	}

	triggered := c.trigger(ctx, stop)
	c.refreshNearbyVisited()

	return triggered, nil
}

// SkipNarration cancels the current narration and plays the next queued one.
func (c *Coordinator) SkipNarration() error {
	return c.control(func() bool {
		before := c.sequencer.Status()
		c.sequencer.SkipToNext()

		return before.Current != nil
	})
}

// PauseNarration pauses the current narration. Invalid transitions are no-ops.
func (c *Coordinator) PauseNarration() error {
	return c.control(c.sequencer.Pause)
}

// ResumeNarration resumes a paused narration. Invalid transitions are no-ops.
func (c *Coordinator) ResumeNarration() error {
	return c.control(c.sequencer.Resume)
}

// StopNarration cancels the current narration and keeps the queue.
func (c *Coordinator) StopNarration() error {
	return c.control(func() bool {
		before := c.sequencer.Status()
		c.sequencer.Stop()

		return before.Current != nil
	})
}

// Status returns a snapshot of the session for display.
func (c *Coordinator) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := c.state.Stops()
	statuses := make([]StopStatus, 0, len(all))
	for _, stop := range all {
		statuses = append(statuses, StopStatus{Stop: stop, Visited: c.state.IsVisited(stop.ID)})
	}

	status := Status{
		RouteID:             c.route.ID,
		RouteName:           c.route.Name,
		HistoryID:           c.session.HistoryID,
		StartedAt:           c.session.StartedAt,
		WasOptimized:        c.session.WasOptimized,
		TotalDistanceMeters: c.session.TotalDistanceMeters,
		Stops:               statuses,
		Progress:            c.state.Progress(),
		VisitedCount:        c.state.VisitedCount(),
		TotalCount:          c.state.Count(),
		Completed:           c.state.IsComplete(),
		Nearby:              cloneNearby(c.nearby),
		Playback:            c.sequencer.Status(),
	}
	if next, ok := c.state.NextStop(); ok {
		status.NextStop = &next
	}

	return status
}

// MonitoredRegions returns up to limit unvisited stops, in route order, for an
// OS-level region monitor. limit <= 0 returns all of them.
func (c *Coordinator) MonitoredRegions(limit int) []entity.Stop {
	c.mu.Lock()
	defer c.mu.Unlock()

	unvisited := c.state.UnvisitedStops()
	if limit > 0 && len(unvisited) > limit {
		unvisited = unvisited[:limit]
	}

	return unvisited
}

// Snapshot returns the state that would be persisted right now.
func (c *Coordinator) Snapshot() entity.ActiveRouteState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// Subscribe registers for session events. Cancel to unsubscribe; the channel is
// also closed when the coordinator closes.
func (c *Coordinator) Subscribe(buffer int) (<-chan entity.Event, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	return c.hub.Subscribe(buffer)
}

// Close ends the session: it stops tracking, cancels playback, flushes pending
// side effects and closes subscriptions. When deleteSnapshot is true the stored
// snapshot is removed so no resume is offered. Close is idempotent.
func (c *Coordinator) Close(ctx context.Context, deleteSnapshot bool) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return nil
	}
	c.closed = true
	c.evaluator.Reset()
	c.sequencer.StopAndClear()
	c.nearby = nil
	c.mu.Unlock()

	c.outbox.close(ctx)
	c.hub.Close()

	if !deleteSnapshot || c.snapshots == nil {
		return nil
	}

	if err := c.snapshots.Delete(ctx, c.deviceID); err != nil {
		c.logger.Error("Failed to delete route snapshot", slog.Any("error", err))

		return domainerrors.NewPersistenceError(err, "delete snapshot")
	}

	return nil
}

// trigger runs the visit transaction for one stop. mu must be held.
func (c *Coordinator) trigger(ctx context.Context, stop entity.Stop) bool {
	if c.state.IsVisited(stop.ID) {
		return false
	}
	if !c.state.MarkVisited(stop.ID) {
		return false
	}

	// Visited is recorded before narration is queued: a crash in between skips
	// one narration instead of repeating it.
	before := c.sequencer.Status().Current
	c.sequencer.Enqueue(stop.ID, stop.Name, stop.NarrationText, stop.Order)

	c.logger.Info("Stop reached",
		slog.String("stop_id", stop.ID),
		slog.Int("order", stop.Order),
		slog.Float64("progress", c.state.Progress()),
	)

	visited := stop
	c.emit(c.newEvent(entity.EventStopVisited, func(e *entity.Event) {
		e.Stop = &visited
	}))
	if before == nil && c.sequencer.Status().Current != nil {
		c.emitPlayback(entity.EventQueueAdvanced)
	}

	c.notifyStopReached(stop)
	c.persistSnapshot(ctx)

	if c.state.Progress() == 1.0 && !c.completed {
		c.completed = true
		c.logger.Info("Route completed", slog.String("history_id", c.session.HistoryID))
		c.emit(c.newEvent(entity.EventRouteCompleted, nil))
		c.notifyRouteCompleted()
	}

	return true
}

func (c *Coordinator) playbackFinished(token uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.sequencer.PlaybackFinished(token, err) {
		c.emitPlayback(entity.EventQueueAdvanced)
	}
}

func (c *Coordinator) control(action func() bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	if action() {
		c.emitPlayback(entity.EventPlaybackStateChanged)
	}

	return nil
}

func (c *Coordinator) emitPlayback(eventType entity.EventType) {
	playback := c.sequencer.Status()
	c.emit(c.newEvent(eventType, func(e *entity.Event) {
		e.Playback = &playback
	}))
}

func (c *Coordinator) newEvent(eventType entity.EventType, fill func(e *entity.Event)) entity.Event {
	event := entity.Event{
		Type:         eventType,
		RouteID:      c.route.ID,
		HistoryID:    c.session.HistoryID,
		Progress:     c.state.Progress(),
		VisitedCount: c.state.VisitedCount(),
		TotalCount:   c.state.Count(),
		OccurredAt:   c.now(),
	}
	if fill != nil {
		fill(&event)
	}

	return event
}

// emit fans the event out to subscribers immediately and to the publisher via
// the ordered outbox. mu must be held.
func (c *Coordinator) emit(event entity.Event) {
	c.hub.Broadcast(event)

	if c.publisher == nil {
		return
	}

	msg := &service.ProgressEvent{DeviceID: c.deviceID, Event: &event}
	c.outbox.submit("publish "+string(event.Type), func(ctx context.Context) {
		if err := c.publisher.PublishProgressEvent(ctx, msg); err != nil {
			c.logger.Warn("Failed to publish progress event",
				slog.String("event_type", string(event.Type)),
				slog.Any("error", err),
			)
		}
	})
}

func (c *Coordinator) notifyStopReached(stop entity.Stop) {
	if c.notifier == nil {
		return
	}

	reached := service.StopReached{
		RouteID:   c.route.ID,
		HistoryID: c.session.HistoryID,
		StopID:    stop.ID,
		StopName:  stop.Name,
		Order:     stop.Order,
		Visited:   c.state.VisitedCount(),
		Total:     c.state.Count(),
	}
	c.outbox.submit("notify stop reached", func(ctx context.Context) {
		if err := c.notifier.NotifyStopReached(ctx, reached); err != nil {
			c.logger.Warn("Failed to send stop notification",
				slog.String("stop_id", reached.StopID),
				slog.Any("error", err),
			)
		}
	})
}

func (c *Coordinator) notifyRouteCompleted() {
	if c.notifier == nil {
		return
	}

	routeID, routeName := c.route.ID, c.route.Name
	c.outbox.submit("notify route completed", func(ctx context.Context) {
		if err := c.notifier.NotifyRouteCompleted(ctx, routeID, routeName); err != nil {
			c.logger.Warn("Failed to send completion notification", slog.Any("error", err))
		}
	})
}

// persistSnapshot writes the current state. Failures are logged and the route
// continues in memory. mu must be held.
func (c *Coordinator) persistSnapshot(ctx context.Context) {
	if c.snapshots == nil {
		return
	}

	snapshot := c.snapshotLocked()
	if err := c.snapshots.Save(ctx, c.deviceID, &snapshot); err != nil {
		c.logger.Error("Failed to persist route snapshot",
			slog.String("history_id", snapshot.HistoryID),
			slog.Any("error", err),
		)
	}
}

func (c *Coordinator) snapshotLocked() entity.ActiveRouteState {
	return entity.ActiveRouteState{
		RouteID:             c.route.ID,
		HistoryID:           c.session.HistoryID,
		StartedAt:           c.session.StartedAt,
		VisitedStopIDs:      c.state.VisitedIDs(),
		StopOrder:           c.state.Order(),
		WasOptimized:        c.session.WasOptimized,
		TotalDistanceMeters: c.session.TotalDistanceMeters,
		UpdatedAt:           c.now(),
	}
}

func (c *Coordinator) refreshNearbyVisited() {
	for idx := range c.nearby {
		c.nearby[idx].Visited = c.state.IsVisited(c.nearby[idx].Stop.ID)
	}
}

func cloneNearby(nearby []entity.NearbyStop) []entity.NearbyStop {
	if nearby == nil {
		return []entity.NearbyStop{}
	}

	out := make([]entity.NearbyStop, len(nearby))
	copy(out, nearby)

	return out
}
