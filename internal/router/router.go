// Package router turns navigation events into page activity.
//
// A [Router] resolves a path through the page registry, records the result
// as the session's active route, and decides once per navigation which chart
// slots are active. The render engine consumes that decision; charts never
// inspect the path themselves.
package router

import (
	"log/slog"
	"time"

	"github.com/jpalmerr/paineis/internal/page"
	"github.com/jpalmerr/paineis/internal/store"
)

// Router resolves navigation paths for independent sessions.
//
// Router holds no per-session state of its own; the active route of each
// session lives in the [store.Store]. It is safe for concurrent use.
type Router struct {
	registry *page.Registry
	sessions store.Store
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a [Router]. A nil logger uses [slog.Default].
func New(registry *page.Registry, sessions store.Store, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		registry: registry,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Navigate resolves path, records it as the session's active route and
// returns the page with the activity flag of every known slot.
//
// Navigation is never a no-op: repeating the current path produces a fresh
// state and counts as a new navigation. An empty sessionID resolves without
// recording anything, which is what one-shot renders use.
func (r *Router) Navigate(sessionID, path string) (page.Page, page.SlotState) {
	p := r.registry.Resolve(path)

	if sessionID != "" {
		s := r.sessions.Record(sessionID, p.Route, r.now())
		r.logger.Debug("navigation",
			"session_id", sessionID,
			"path", path,
			"route", p.Route,
			"navigations", s.Navigations,
		)
	}

	return p, r.slotState(p)
}

// Active returns the session's active page, or the home page if the session
// has not navigated yet.
func (r *Router) Active(sessionID string) page.Page {
	if s, ok := r.sessions.Get(sessionID); ok {
		return r.registry.Resolve(s.Route)
	}
	return r.registry.Home()
}

// Pages returns the registered pages in order.
func (r *Router) Pages() []page.Page {
	return r.registry.Pages()
}

// SlotIDs returns every known slot id in registry order.
func (r *Router) SlotIDs() []string {
	return r.registry.SlotIDs()
}

// slotState flags every known slot, true only for slots of p.
func (r *Router) slotState(p page.Page) page.SlotState {
	ids := r.registry.SlotIDs()
	state := make(page.SlotState, len(ids))
	for _, id := range ids {
		state[id] = false
	}
	for _, id := range p.SlotIDs() {
		state[id] = true
	}
	return state
}
