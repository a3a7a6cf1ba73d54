package page

import (
	"errors"
	"fmt"
)

// HomeRoute is the route every unknown path resolves to.
const HomeRoute = "/"

// Slot is a named chart placeholder on a page.
type Slot struct {
	// ID identifies the slot across all pages.
	ID string `json:"id"`

	// Title is the card heading shown above the chart.
	Title string `json:"title"`
}

// Page describes one dashboard page and its ordered chart slots.
type Page struct {
	Route string `json:"route"`
	Title string `json:"title"`
	Slots []Slot `json:"slots"`
}

// SlotIDs returns the page's slot ids in layout order.
func (p Page) SlotIDs() []string {
	ids := make([]string, len(p.Slots))
	for i, s := range p.Slots {
		ids[i] = s.ID
	}
	return ids
}

// Has reports whether the page contains the slot.
func (p Page) Has(slotID string) bool {
	for _, s := range p.Slots {
		if s.ID == slotID {
			return true
		}
	}
	return false
}

func (p Page) clone() Page {
	p.Slots = append([]Slot(nil), p.Slots...)
	return p
}

// SlotState records, for every known slot, whether it belongs to the active page.
type SlotState map[string]bool

// Active reports whether slotID is on the active page. Unknown ids are inactive.
func (s SlotState) Active(slotID string) bool {
	return s[slotID]
}

// ActiveIDs returns the active slot ids in the order given by ids.
func (s SlotState) ActiveIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		if s[id] {
			out = append(out, id)
		}
	}
	return out
}

// Registry is the immutable route table.
type Registry struct {
	pages  []Page
	routes map[string]int
	home   int
}

// NewRegistry validates pages and builds a [Registry].
//
// Exactly one page must use [HomeRoute]. Routes must be unique, every page
// needs a title, and slot ids must be non-empty and unique across all pages.
func NewRegistry(pages ...Page) (*Registry, error) {
	if len(pages) == 0 {
		return nil, errors.New("at least one page is required")
	}

	r := &Registry{
		pages:  make([]Page, len(pages)),
		routes: make(map[string]int, len(pages)),
		home:   -1,
	}
	slots := make(map[string]string)

	for i, p := range pages {
		if p.Route == "" {
			return nil, fmt.Errorf("pages[%d]: route is required", i)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("pages[%d] (%s): title is required", i, p.Route)
		}
		if _, dup := r.routes[p.Route]; dup {
			return nil, fmt.Errorf("pages[%d]: duplicate route %q", i, p.Route)
		}
		for j, s := range p.Slots {
			if s.ID == "" {
				return nil, fmt.Errorf("pages[%d] (%s): slots[%d]: id is required", i, p.Route, j)
			}
			if owner, dup := slots[s.ID]; dup {
				return nil, fmt.Errorf("pages[%d] (%s): slot %q already defined on %s", i, p.Route, s.ID, owner)
			}
			slots[s.ID] = p.Route
		}

		r.pages[i] = p.clone()
		r.routes[p.Route] = i
		if p.Route == HomeRoute {
			r.home = i
		}
	}

	if r.home < 0 {
		return nil, fmt.Errorf("a page with route %q is required", HomeRoute)
	}

	return r, nil
}

// Resolve returns the page for path, or the home page when no route matches.
func (r *Registry) Resolve(path string) Page {
	if p, ok := r.Lookup(path); ok {
		return p
	}
	return r.pages[r.home].clone()
}

// Lookup returns the page registered for exactly path.
func (r *Registry) Lookup(path string) (Page, bool) {
	i, ok := r.routes[path]
	if !ok {
		return Page{}, false
	}
	return r.pages[i].clone(), true
}

// Home returns the home page.
func (r *Registry) Home() Page {
	return r.pages[r.home].clone()
}

// Pages returns a copy of all pages in registration order.
func (r *Registry) Pages() []Page {
	out := make([]Page, len(r.pages))
	for i, p := range r.pages {
		out[i] = p.clone()
	}
	return out
}

// SlotIDs returns every slot id across all pages in registration order.
func (r *Registry) SlotIDs() []string {
	var ids []string
	for _, p := range r.pages {
		ids = append(ids, p.SlotIDs()...)
	}
	return ids
}
