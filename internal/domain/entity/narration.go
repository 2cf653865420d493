// Package entity contains the core business objects of the project.
package entity

// AudioQueueItem is one pending narration.
type AudioQueueItem struct {
	ID       string `json:"id"` // Unique per enqueue.
	StopID   string `json:"stop_id"`
	StopName string `json:"stop_name"`
	Text     string `json:"text"`
	Order    int    `json:"order"`
}

// PlaybackStatus is a point-in-time view of the narration queue.
type PlaybackStatus struct {
	Current   *AudioQueueItem  `json:"current,omitempty"`
	Queue     []AudioQueueItem `json:"queue"`
	IsPlaying bool             `json:"is_playing"`
	IsPaused  bool             `json:"is_paused"`
}
