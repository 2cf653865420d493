// Package entity contains the core business objects of the project.
package entity

import "time"

// LocationSample is one push-delivered fix from the location source.
type LocationSample struct {
	Coordinate     Coordinate `json:"coordinate"`
	AccuracyMeters float64    `json:"accuracy_meters"` // Horizontal accuracy; 0 when unknown.
	Timestamp      time.Time  `json:"timestamp"`
}

// NearbyStop is a stop close enough to the user to be shown in the UI.
type NearbyStop struct {
	Stop           Stop    `json:"stop"`
	DistanceMeters float64 `json:"distance_meters"`
	Visited        bool    `json:"visited"`
}
