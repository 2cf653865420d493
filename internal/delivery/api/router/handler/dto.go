package handler

import (
	"time"

	"audiotour/internal/domain/entity"
	"audiotour/internal/engine/optimizer"
	"audiotour/internal/engine/progress"
	"audiotour/internal/usecase"
)

// --- Requests ---

// CoordinateRequest is a WGS84 position. Pointers keep 0 distinguishable from missing.
type CoordinateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func (r *CoordinateRequest) toEntity() entity.Coordinate {
	return entity.Coordinate{Lat: *r.Latitude, Lng: *r.Longitude}
}

// StartTourRequest represents the request body for starting a route
type StartTourRequest struct {
	RouteID       string             `json:"route_id" validate:"required"`
	Optimize      bool               `json:"optimize"`
	StartLocation *CoordinateRequest `json:"start_location"`
}

// LocationRequest represents one location sample pushed by the client
type LocationRequest struct {
	CoordinateRequest
	Accuracy  float64    `json:"accuracy"`
	Timestamp *time.Time `json:"timestamp"`
}

func (r *LocationRequest) toEntity(now time.Time) entity.LocationSample {
	sample := entity.LocationSample{
		Coordinate:     r.CoordinateRequest.toEntity(),
		AccuracyMeters: r.Accuracy,
		Timestamp:      now,
	}
	if r.Timestamp != nil {
		sample.Timestamp = *r.Timestamp
	}

	return sample
}

// --- Responses ---

// RouteSummary is a catalog entry without its stops.
type RouteSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Description string `json:"description,omitempty"`
	StopCount   int    `json:"stop_count"`
}

func newRouteSummaries(routes []*entity.Route) []RouteSummary {
	out := make([]RouteSummary, 0, len(routes))
	for _, route := range routes {
		out = append(out, RouteSummary{
			ID:          route.ID,
			Name:        route.Name,
			City:        route.City,
			Description: route.Description,
			StopCount:   len(route.Stops),
		})
	}

	return out
}

// OptimizationResponse tells the client whether to offer a reordered route.
type OptimizationResponse struct {
	RouteID                 string                 `json:"route_id"`
	ShouldSuggest           bool                   `json:"should_suggest"`
	Nearest                 *optimizer.NearestStop `json:"nearest_stop,omitempty"`
	NaturalDistanceMeters   float64                `json:"natural_distance_meters"`
	OptimizedDistanceMeters float64                `json:"optimized_distance_meters"`
}

func newOptimizationResponse(s *usecase.OptimizationSuggestion) OptimizationResponse {
	return OptimizationResponse{
		RouteID:                 s.RouteID,
		ShouldSuggest:           s.ShouldSuggest,
		Nearest:                 s.Nearest,
		NaturalDistanceMeters:   s.NaturalDistanceMeters,
		OptimizedDistanceMeters: s.OptimizedDistanceMeters,
	}
}

// ResumeCandidateResponse describes the route that can be resumed.
type ResumeCandidateResponse struct {
	RouteID      string    `json:"route_id"`
	RouteName    string    `json:"route_name"`
	HistoryID    string    `json:"history_id"`
	StartedAt    time.Time `json:"started_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	VisitedCount int       `json:"visited_count"`
	TotalCount   int       `json:"total_count"`
	WasOptimized bool      `json:"was_optimized"`
}

func newResumeCandidateResponse(c *usecase.ResumeCandidate) ResumeCandidateResponse {
	return ResumeCandidateResponse{
		RouteID:      c.RouteID,
		RouteName:    c.RouteName,
		HistoryID:    c.HistoryID,
		StartedAt:    c.StartedAt,
		UpdatedAt:    c.UpdatedAt,
		VisitedCount: c.VisitedCount,
		TotalCount:   c.TotalCount,
		WasOptimized: c.WasOptimized,
	}
}

// ResumeResponse is the restored status plus how the snapshot was reconciled.
type ResumeResponse struct {
	Status            *progress.Status `json:"status"`
	UsedNaturalOrder  bool             `json:"used_natural_order"`
	DroppedOrderIDs   []string         `json:"dropped_order_ids,omitempty"`
	DroppedVisitedIDs []string         `json:"dropped_visited_ids,omitempty"`
	MissingOrderIDs   []string         `json:"missing_order_ids,omitempty"`
}

func newResumeResponse(out *usecase.ResumeOutput) ResumeResponse {
	return ResumeResponse{
		Status:            out.Status,
		UsedNaturalOrder:  out.Report.UsedNaturalOrder,
		DroppedOrderIDs:   out.Report.DroppedOrderIDs,
		DroppedVisitedIDs: out.Report.DroppedVisitedIDs,
		MissingOrderIDs:   out.Report.MissingOrderIDs,
	}
}

// LocationResponse reports the effect of one sample.
type LocationResponse struct {
	Accepted  bool                `json:"accepted"`
	Evaluated bool                `json:"evaluated"`
	Triggered []entity.Stop       `json:"triggered"`
	Nearby    []entity.NearbyStop `json:"nearby"`
	Progress  float64             `json:"progress"`
	Completed bool                `json:"completed"`
}

func newLocationResponse(out *usecase.LocationUpdateOutput) LocationResponse {
	resp := LocationResponse{
		Accepted:  out.Accepted,
		Evaluated: out.Evaluated,
		Triggered: out.Triggered,
		Nearby:    out.Nearby,
		Progress:  out.Progress,
		Completed: out.Completed,
	}
	if resp.Triggered == nil {
		resp.Triggered = []entity.Stop{}
	}
	if resp.Nearby == nil {
		resp.Nearby = []entity.NearbyStop{}
	}

	return resp
}

// RegionEnteredResponse reports whether the region event triggered its stop.
type RegionEnteredResponse struct {
	StopID    string `json:"stop_id"`
	Triggered bool   `json:"triggered"`
}
