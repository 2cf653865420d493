package service

import (
	"context"
)

// StopReached describes a "stop X reached" notification.
type StopReached struct {
	RouteID   string
	HistoryID string
	StopID    string
	StopName  string
	Order     int
	Visited   int
	Total     int
}

// NotificationService delivers local/push notifications. Delivery is fire-and-forget.
type NotificationService interface {
	// NotifyStopReached tells the user a stop geofence was reached.
	NotifyStopReached(ctx context.Context, reached StopReached) error

	// NotifyRouteCompleted tells the user every stop was visited.
	NotifyRouteCompleted(ctx context.Context, routeID, routeName string) error
}
