// Package entity contains the core business objects of the project.
package entity

import "time"

// EventType identifies a progress event emitted by a tour session.
type EventType string

const (
	EventStopVisited          EventType = "stop_visited"
	EventRouteCompleted       EventType = "route_completed"
	EventQueueAdvanced        EventType = "queue_advanced"
	EventPlaybackStateChanged EventType = "playback_state_changed"
	EventNearbyChanged        EventType = "nearby_changed"
)

// Event is a typed progress notification fanned out to subscribers and publishers.
type Event struct {
	Type         EventType       `json:"type"`
	RouteID      string          `json:"route_id"`
	HistoryID    string          `json:"history_id"`
	Stop         *Stop           `json:"stop,omitempty"`
	Progress     float64         `json:"progress"`
	VisitedCount int             `json:"visited_count"`
	TotalCount   int             `json:"total_count"`
	Playback     *PlaybackStatus `json:"playback,omitempty"`
	Nearby       []NearbyStop    `json:"nearby,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
