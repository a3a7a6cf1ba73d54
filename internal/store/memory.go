package store

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory implementation of [Store].
//
// Sessions are keyed by id. All methods are safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates a new in-memory [Store] implementation.
//
// The store is immediately ready for use. No cleanup is required when done.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

// Record stores route as the session's active route.
func (m *MemoryStore) Record(id, route string, at time.Time) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessions[id]
	s.ID = id
	s.Route = route
	s.Navigations++
	s.UpdatedAt = at
	m.sessions[id] = s
	return s
}

// Get returns the session with the given id.
func (m *MemoryStore) Get(id string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	return s, ok
}

// GetAll returns a snapshot of all sessions ordered by id.
//
// The returned slice is a copy; modifications do not affect the store.
func (m *MemoryStore) GetAll() []Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		results = append(results, s)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results
}

// Delete removes a session. Safe to call with an unknown id.
func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Prune removes sessions whose last navigation happened before the cutoff.
func (m *MemoryStore) Prune(before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(before) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
