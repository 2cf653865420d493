package service

import (
	"context"

	"audiotour/internal/domain/entity"
)

// ProgressEvent is the wire form of a tour progress event.
type ProgressEvent struct {
	RequestID string        `json:"request_id,omitempty"` // For distributed tracing
	DeviceID  string        `json:"device_id"`
	Event     *entity.Event `json:"event"`
}

// EventPublisher defines the interface for publishing progress events to a message queue
type EventPublisher interface {
	// PublishProgressEvent publishes one progress event
	PublishProgressEvent(ctx context.Context, event *ProgressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
