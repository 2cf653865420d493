package pubsub

import (
	"audiotour/internal/domain/constants"
	"audiotour/internal/domain/service"
)

// eventAttributes builds message attributes for subscription filtering and tracing.
func eventAttributes(event *service.ProgressEvent) map[string]string {
	attributes := map[string]string{
		constants.AttrEventType: string(event.Event.Type),
		constants.AttrRouteID:   event.Event.RouteID,
		constants.AttrHistoryID: event.Event.HistoryID,
		constants.AttrDeviceID:  event.DeviceID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return attributes
}
