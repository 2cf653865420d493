package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"audiotour/config"
	"audiotour/internal/delivery/api/response"
	deliverycontext "audiotour/internal/delivery/context"
	"audiotour/internal/domain/entity"
	"audiotour/internal/usecase"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 5 * time.Second
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	TourUC usecase.TourUsecase
	Config *config.Config
	Logger *slog.Logger
}

// EventHandler streams progress events of the active route over a websocket.
type EventHandler struct {
	tourUC         usecase.TourUsecase
	originPatterns []string
	logger         *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		tourUC:         params.TourUC,
		originPatterns: originHosts(params.Config.HTTP.AllowedOrigins, params.Logger),
		logger:         params.Logger,
	}
}

// originHosts turns configured origins into the host patterns the websocket
// origin check matches against. Same-origin requests are always accepted.
func originHosts(origins []string, logger *slog.Logger) []string {
	hosts := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin == "*" {
			hosts = append(hosts, origin)

			continue
		}

		u, err := url.Parse(origin)
		if err != nil || u.Host == "" {
			logger.Warn("Ignoring invalid allowed origin", slog.String("origin", origin))

			continue
		}
		hosts = append(hosts, u.Host)
	}

	return hosts
}

// StreamEvents upgrades to a websocket and writes one JSON message per event
// until the client leaves or the route ends.
func (h *EventHandler) StreamEvents(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	events, cancel, err := h.tourUC.Subscribe(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer cancel()

	// The server's write timeout must not end long-lived streams.
	rc := http.NewResponseController(c.Response())
	_ = rc.SetWriteDeadline(time.Time{})
	_ = rc.SetReadDeadline(time.Time{})

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		logger.Warn("Websocket accept failed", slog.Any("error", err))

		return nil
	}
	defer conn.CloseNow()

	// Client messages are not expected; CloseRead cancels ctx when the peer goes away.
	ctx := conn.CloseRead(context.WithoutCancel(c.Request().Context()))

	logger.Debug("Event stream opened")
	status, reason := h.writeLoop(ctx, conn, events)
	logger.Debug("Event stream closed", slog.String("reason", reason))

	_ = conn.Close(status, reason)

	return nil
}

func (h *EventHandler) writeLoop(ctx context.Context, conn *websocket.Conn, events <-chan entity.Event) (websocket.StatusCode, string) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return websocket.StatusNormalClosure, "client closed"

		case event, ok := <-events:
			if !ok {
				return websocket.StatusNormalClosure, "tour ended"
			}
			writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
			err := wsjson.Write(writeCtx, conn, event)
			cancel()
			if err != nil {
				return websocket.StatusInternalError, "write failed"
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return websocket.StatusGoingAway, "ping failed"
			}
		}
	}
}
