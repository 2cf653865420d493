package notification

import (
	"context"
	"log/slog"

	"audiotour/internal/domain/service"
)

// logService records notifications in the log when no push channel is configured.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a log-only notification service
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) NotifyStopReached(_ context.Context, reached service.StopReached) error {
	s.logger.Info("[Notification] Stop reached",
		slog.String("route_id", reached.RouteID),
		slog.String("stop_id", reached.StopID),
		slog.String("stop_name", reached.StopName),
		slog.Int("visited", reached.Visited),
		slog.Int("total", reached.Total),
	)

	return nil
}

func (s *logService) NotifyRouteCompleted(_ context.Context, routeID, routeName string) error {
	s.logger.Info("[Notification] Route completed",
		slog.String("route_id", routeID),
		slog.String("route_name", routeName),
	)

	return nil
}
