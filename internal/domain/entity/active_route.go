// Package entity contains the core business objects of the project.
package entity

import "time"

// ActiveRouteState is the persisted snapshot that lets a route resume after the
// process is suspended or killed.
type ActiveRouteState struct {
	RouteID             string    `json:"route_id"`
	HistoryID           string    `json:"history_id"`
	StartedAt           time.Time `json:"started_at"`
	VisitedStopIDs      []string  `json:"visited_stop_ids"`      // Set semantics; stored in route order.
	StopOrder           []string  `json:"stop_order"`            // Stop ids in current, possibly optimized, order.
	WasOptimized        bool      `json:"was_optimized"`
	TotalDistanceMeters float64   `json:"total_distance_meters"` // Greedy walk from the start location; 0 without one.
	UpdatedAt           time.Time `json:"updated_at"`
}
