package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"audiotour/config"
	"audiotour/internal/delivery/api/router"
	"audiotour/internal/delivery/api/router/handler"
	"audiotour/internal/domain/entity"
	domainerrors "audiotour/internal/domain/errors"
	"audiotour/internal/engine/progress"
	mockUsecase "audiotour/internal/mocks/usecase"
	"audiotour/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockTourUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.HTTP.AllowedOrigins = []string{"https://tour.example.com"}
	logger := slog.New(slog.DiscardHandler)
	tourUC := mockUsecase.NewMockTourUsecase(t)

	e := NewEcho(cfg, logger, router.RouterParams{
		RouteHandler: handler.NewRouteHandler(handler.RouteHandlerParams{TourUC: tourUC, Logger: logger}),
		TourHandler:  handler.NewTourHandler(handler.TourHandlerParams{TourUC: tourUC, Logger: logger}),
		EventHandler: handler.NewEventHandler(handler.EventHandlerParams{TourUC: tourUC, Config: cfg, Logger: logger}),
	})

	return e, tourUC
}

func doRequest(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)

	return rec, env
}

func TestHealth(t *testing.T) {
	e, _ := newTestEcho(t)

	rec, env := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}

func TestListRoutes(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().ListRoutes(mock.Anything).Return([]*entity.Route{
		{ID: "r1", Name: "Harbour", City: "Porto", Stops: []entity.Stop{{ID: "a"}, {ID: "b"}}},
	}, nil)

	rec, env := doRequest(e, http.MethodGet, "/routes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var routes []handler.RouteSummary
	require.NoError(t, json.Unmarshal(env.Data, &routes))
	require.Len(t, routes, 1)
	assert.Equal(t, "r1", routes[0].ID)
	assert.Equal(t, 2, routes[0].StopCount)
}

func TestGetRoute_NotFound(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().GetRoute(mock.Anything, "missing").
		Return(nil, domainerrors.ErrRouteNotFound.WithDetails("route missing"))

	rec, env := doRequest(e, http.MethodGet, "/routes/missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "route missing", env.Error.Details)
}

func TestSuggestOptimization(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().SuggestOptimization(mock.Anything, "r1", entity.Coordinate{Lat: 0, Lng: -0.001}).
		Return(&usecase.OptimizationSuggestion{RouteID: "r1", ShouldSuggest: true}, nil)

	rec, env := doRequest(e, http.MethodPost, "/routes/r1/optimization", `{"latitude": 0, "longitude": -0.001}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"should_suggest":true`)
}

func TestStartTour_Validation(t *testing.T) {
	e, _ := newTestEcho(t)

	rec, env := doRequest(e, http.MethodPost, "/tour", `{"optimize": true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = doRequest(e, http.MethodPost, "/tour", `{"route_id": "r1", "start_location": {"latitude": 1}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestStartTour(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().StartTour(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input usecase.StartTourInput) {
			assert.Equal(t, "r1", input.RouteID)
			assert.True(t, input.Optimize)
			require.NotNil(t, input.StartLocation)
			assert.InDelta(t, 41.1, input.StartLocation.Lat, 1e-9)
		}).
		Return(&progress.Status{RouteID: "r1", HistoryID: "h1", TotalCount: 3}, nil)

	rec, env := doRequest(e, http.MethodPost, "/tour",
		`{"route_id": "r1", "optimize": true, "start_location": {"latitude": 41.1, "longitude": -8.6}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var status progress.Status
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "h1", status.HistoryID)
	assert.Equal(t, 3, status.TotalCount)
}

func TestStartTour_Conflict(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().StartTour(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrRouteAlreadyActive)

	rec, env := doRequest(e, http.MethodPost, "/tour", `{"route_id": "r1"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_ALREADY_ACTIVE", env.Error.Code)
}

func TestUpdateLocation(t *testing.T) {
	e, tourUC := newTestEcho(t)
	ts := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	tourUC.EXPECT().UpdateLocation(mock.Anything, entity.LocationSample{
		Coordinate:     entity.Coordinate{Lat: 41.1, Lng: -8.6},
		AccuracyMeters: 12,
		Timestamp:      ts,
	}).Return(&usecase.LocationUpdateOutput{
		Accepted:  true,
		Evaluated: true,
		Triggered: []entity.Stop{{ID: "B"}},
		Progress:  0.5,
	}, nil)

	rec, env := doRequest(e, http.MethodPost, "/tour/location",
		`{"latitude": 41.1, "longitude": -8.6, "accuracy": 12, "timestamp": "2026-05-01T10:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out handler.LocationResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.True(t, out.Accepted)
	require.Len(t, out.Triggered, 1)
	assert.Equal(t, "B", out.Triggered[0].ID)
	assert.NotNil(t, out.Nearby)
}

func TestUpdateLocation_Unavailable(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().UpdateLocation(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLocationUnavailable)

	rec, env := doRequest(e, http.MethodPost, "/tour/location", `{"latitude": 95, "longitude": 0}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "LOCATION_UNAVAILABLE", env.Error.Code)
}

func TestRegionEntered(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().RegionEntered(mock.Anything, "B").Return(true, nil)

	rec, env := doRequest(e, http.MethodPost, "/tour/regions/B/enter", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"stop_id":"B","triggered":true}`, string(env.Data))
}

func TestPauseNarration(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().PauseNarration(mock.Anything).Return(nil)
	tourUC.EXPECT().Status(mock.Anything).Return(&progress.Status{
		Playback: entity.PlaybackStatus{IsPlaying: true, IsPaused: true, Queue: []entity.AudioQueueItem{}},
	}, nil)

	rec, env := doRequest(e, http.MethodPost, "/tour/narration/pause", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"is_paused":true`)
}

func TestResumeCandidate_None(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().ResumeCandidate(mock.Anything).Return(nil, domainerrors.ErrNoResumableRoute)

	rec, env := doRequest(e, http.MethodGet, "/tour/resume", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NO_RESUMABLE_ROUTE", env.Error.Code)
}

func TestDiscardResume_PersistenceFailureHidesDetails(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().DiscardResume(mock.Anything).
		Return(domainerrors.NewPersistenceError(assert.AnError, "delete snapshot"))

	rec, env := doRequest(e, http.MethodDelete, "/tour/resume", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PERSISTENCE_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestStreamEvents_NoActiveRoute(t *testing.T) {
	e, tourUC := newTestEcho(t)
	tourUC.EXPECT().Subscribe(mock.Anything).Return(nil, nil, domainerrors.ErrNoActiveRoute)

	rec, env := doRequest(e, http.MethodGet, "/tour/events", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NO_ACTIVE_ROUTE", env.Error.Code)
}

func TestStreamEvents(t *testing.T) {
	e, tourUC := newTestEcho(t)
	events := make(chan entity.Event, 1)
	cancelled := make(chan struct{})
	tourUC.EXPECT().Subscribe(mock.Anything).
		Return((<-chan entity.Event)(events), func() { close(cancelled) }, nil)

	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/tour/events", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	events <- entity.Event{Type: entity.EventStopVisited, RouteID: "r1", Stop: &entity.Stop{ID: "B"}, VisitedCount: 1, TotalCount: 3}

	var got entity.Event
	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.Equal(t, entity.EventStopVisited, got.Type)
	require.NotNil(t, got.Stop)
	assert.Equal(t, "B", got.Stop.ID)

	close(events)
	_, _, err = conn.Read(ctx)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))

	select {
	case <-cancelled:
	case <-ctx.Done():
		t.Fatal("subscription was not cancelled")
	}
}

func TestStreamEvents_OriginCheck(t *testing.T) {
	e, tourUC := newTestEcho(t)
	events := make(chan entity.Event)
	tourUC.EXPECT().Subscribe(mock.Anything).
		Return((<-chan entity.Event)(events), func() {}, nil)

	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/tour/events"

	_, resp, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"https://evil.example"}},
	})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"https://tour.example.com"}},
	})
	require.NoError(t, err)
	defer conn.CloseNow()
	close(events)
	_, _, err = conn.Read(ctx)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}

func TestCORS_AllowsConfiguredOriginOnly(t *testing.T) {
	e, _ := newTestEcho(t)

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/tour", nil)
		req.Header.Set(echo.HeaderOrigin, origin)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	allowed := preflight("https://tour.example.com")
	assert.Equal(t, "https://tour.example.com", allowed.Header().Get(echo.HeaderAccessControlAllowOrigin))

	denied := preflight("https://evil.example")
	assert.Empty(t, denied.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
