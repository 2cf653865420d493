// Package entity contains the core business objects of the project.
package entity

import "sort"

// Stop is a single narrated point of interest on a route.
// Visit state is not stored here; it lives in the session's stops state.
type Stop struct {
	ID                  string     `json:"id"`                    // Stable unique identifier.
	Name                string     `json:"name"`                  // Display name used in notifications and prompts.
	Order               int        `json:"order"`                 // Position in the (possibly optimized) sequence.
	Coordinate          Coordinate `json:"coordinate"`            // Geofence center.
	TriggerRadiusMeters float64    `json:"trigger_radius_meters"` // Geofence radius.
	NarrationText       string     `json:"narration_text"`        // Text fed to the speech engine.
}

// SortStopsByOrder sorts stops in place by ascending Order, keeping input order for ties.
func SortStopsByOrder(stops []Stop) {
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Order < stops[j].Order
	})
}

// CloneStops returns a shallow copy of the slice.
func CloneStops(stops []Stop) []Stop {
	if stops == nil {
		return nil
	}

	cloned := make([]Stop, len(stops))
	copy(cloned, stops)

	return cloned
}

// StopIDs returns the ids of stops in slice order.
func StopIDs(stops []Stop) []string {
	ids := make([]string, 0, len(stops))
	for _, stop := range stops {
		ids = append(ids, stop.ID)
	}

	return ids
}
