package store

import "time"

// Session is the navigation state of one browser session.
type Session struct {
	// ID is the session identifier carried in the session cookie.
	ID string `json:"id"`

	// Route is the active route after the last navigation.
	Route string `json:"route"`

	// Navigations counts navigation events, including repeats of the same route.
	Navigations int `json:"navigations"`

	// UpdatedAt is the time of the last navigation.
	UpdatedAt time.Time `json:"updated_at"`
}

// Store defines the interface for per-session navigation state.
//
// Store implementations must be safe for concurrent access.
type Store interface {
	// Record sets the session's active route, creating the session if needed,
	// and returns the updated session.
	Record(id, route string, at time.Time) Session

	// Get returns the session with the given id.
	Get(id string) (Session, bool)

	// GetAll returns a snapshot of all sessions.
	GetAll() []Session

	// Delete removes a session. Unknown ids are ignored.
	Delete(id string)

	// Prune removes sessions last updated before the cutoff and returns
	// how many were removed.
	Prune(before time.Time) int
}
