// Package entity contains the core business objects of the project.
package entity

// Route is an ordered collection of stops plus catalog metadata.
// The catalog is read-only for the tour engine.
type Route struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Description string `json:"description,omitempty"`
	Stops       []Stop `json:"stops"`
}

// StopByID finds a stop by id.
func (r *Route) StopByID(id string) (Stop, bool) {
	for _, stop := range r.Stops {
		if stop.ID == id {
			return stop, true
		}
	}

	return Stop{}, false
}
