package render

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/paineis/internal/data"
	"github.com/jpalmerr/paineis/internal/figure"
	"github.com/jpalmerr/paineis/internal/page"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed uint64 = 42

// Binding ties a slot to the data source and figure builder that fill it.
type Binding struct {
	Source data.Source
	Build  figure.Builder
}

// Option configures an [Engine].
type Option func(*Engine) error

// WithSeed sets the seed passed to every data source.
func WithSeed(seed uint64) Option {
	return func(e *Engine) error {
		e.seed = seed
		return nil
	}
}

// WithTheme sets the theme passed to every figure builder.
func WithTheme(theme figure.Theme) Option {
	return func(e *Engine) error {
		e.theme = theme
		return nil
	}
}

// WithLogger sets the engine logger. Returns an error if logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		e.logger = logger
		return nil
	}
}

// Engine renders slot figures. It is safe for concurrent use: all state is
// fixed at construction and every render builds its values from scratch.
type Engine struct {
	slots    []page.Slot
	bindings map[string]Binding
	seed     uint64
	theme    figure.Theme
	logger   *slog.Logger
}

// NewEngine validates bindings against the registry and creates an [Engine].
//
// Returns a *[BindingError] if a registry slot has no complete binding or a
// binding names a slot no page defines.
func NewEngine(registry *page.Registry, bindings map[string]Binding, opts ...Option) (*Engine, error) {
	e := &Engine{
		bindings: make(map[string]Binding, len(bindings)),
		seed:     DefaultSeed,
		theme:    figure.DefaultTheme(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	known := make(map[string]bool)
	var unbound []string
	for _, p := range registry.Pages() {
		for _, s := range p.Slots {
			known[s.ID] = true
			e.slots = append(e.slots, s)

			b, ok := bindings[s.ID]
			if !ok || b.Source == nil || b.Build == nil {
				unbound = append(unbound, s.ID)
				continue
			}
			e.bindings[s.ID] = b
		}
	}
	if len(unbound) > 0 {
		return nil, &BindingError{SlotIDs: unbound, Err: ErrUnboundSlot}
	}

	var unknown []string
	for id := range bindings {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &BindingError{SlotIDs: unknown, Err: ErrUnknownSlot}
	}

	return e, nil
}

// Seed returns the seed passed to data sources.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// Render returns the figure for one slot.
//
// An inactive slot always gets [figure.Empty] and its data source is not
// called. An active slot runs its data source and figure builder; any
// failure is returned as a *[SlotError].
func (e *Engine) Render(slotID string, active bool) (figure.Figure, error) {
	if !active {
		return figure.Empty(), nil
	}

	b, ok := e.bindings[slotID]
	if !ok {
		return figure.Empty(), e.fail(slotID, fmt.Errorf("%w %q", ErrUnknownSlot, slotID), nil)
	}

	start := time.Now()
	fig, stack, err := e.build(b)
	if err != nil {
		return figure.Empty(), e.fail(slotID, err, stack)
	}

	e.logger.Debug("slot rendered",
		"slot_id", slotID,
		"kind", string(fig.Kind),
		"points", fig.Points(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return fig, nil
}

// build runs the binding with panic recovery. stack is set only for panics.
func (e *Engine) build(b Binding) (fig figure.Figure, stack []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack = debug.Stack()
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	ds, err := b.Source(e.seed)
	if err != nil {
		return figure.Figure{}, nil, fmt.Errorf("data source: %w", err)
	}

	fig, err = b.Build(ds, e.theme)
	if err != nil {
		return figure.Figure{}, nil, fmt.Errorf("figure builder: %w", err)
	}
	return fig, nil, nil
}

// fail logs a slot failure under a fresh correlation id and wraps it.
func (e *Engine) fail(slotID string, err error, stack []byte) *SlotError {
	correlationID := uuid.NewString()

	attrs := []any{
		"slot_id", slotID,
		"correlation_id", correlationID,
		"error", err.Error(),
	}
	if stack != nil {
		attrs = append(attrs, "stack", string(stack))
	}
	e.logger.Error("slot render failed", attrs...)

	return &SlotError{SlotID: slotID, CorrelationID: correlationID, Err: err}
}

// SlotResult is the outcome of rendering one slot.
type SlotResult struct {
	Slot   page.Slot
	Active bool
	Figure figure.Figure

	// Err is a *SlotError when the slot failed; Figure is then the placeholder.
	Err error
}

// PageResult is the outcome of one navigation: the resolved page and a
// result for every known slot in registry order.
type PageResult struct {
	Page  page.Page
	Slots []SlotResult
}

// ActiveSlots returns the results of slots on the page, in layout order.
func (r PageResult) ActiveSlots() []SlotResult {
	var out []SlotResult
	for _, s := range r.Slots {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}

// Slot returns the result for slotID.
func (r PageResult) Slot(slotID string) (SlotResult, bool) {
	for _, s := range r.Slots {
		if s.Slot.ID == slotID {
			return s, true
		}
	}
	return SlotResult{}, false
}

// Failed returns the results of slots whose render failed.
func (r PageResult) Failed() []SlotResult {
	var out []SlotResult
	for _, s := range r.Slots {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// RenderPage renders every known slot for one navigation, sequentially.
// A failing slot does not stop the others.
func (e *Engine) RenderPage(p page.Page, state page.SlotState) PageResult {
	result := PageResult{
		Page:  p,
		Slots: make([]SlotResult, len(e.slots)),
	}
	for i, s := range e.slots {
		active := state.Active(s.ID)
		fig, err := e.Render(s.ID, active)
		result.Slots[i] = SlotResult{Slot: s, Active: active, Figure: fig, Err: err}
	}
	return result
}
