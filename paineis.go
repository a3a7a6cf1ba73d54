package paineis

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/jpalmerr/paineis/dashboard"
	"github.com/jpalmerr/paineis/internal/page"
	"github.com/jpalmerr/paineis/internal/render"
	"github.com/jpalmerr/paineis/internal/router"
	"github.com/jpalmerr/paineis/internal/server"
	"github.com/jpalmerr/paineis/internal/store"
)

const (
	defaultTitle             = "Painéis Angela Leitte"
	defaultSubtitle          = "Dashboard de exemplo"
	defaultFooter            = "Dashboard de exemplo · paineis.angelaleitte.com.br"
	defaultHost              = "0.0.0.0"
	defaultPort              = 8050
	defaultSessionTTL        = 30 * time.Minute
	defaultReadHeaderTimeout = 5 * time.Second
)

// Page describes one dashboard page and its ordered chart slots.
type Page = page.Page

// PageResult is the outcome of one navigation: the resolved page and a
// result for every known chart slot.
type PageResult = render.PageResult

// SlotResult is the outcome of rendering one chart slot.
type SlotResult = render.SlotResult

// Dashboard wires the page table, router and render engine together and
// serves them over HTTP.
//
// It is created using [New] with functional options and started with
// [Dashboard.Start]. [Dashboard.Navigate] may be called directly, and
// concurrently, without starting the server.
type Dashboard struct {
	title             string
	subtitle          string
	footer            string
	host              string
	port              int
	sessionTTL        time.Duration
	readHeaderTimeout time.Duration
	logger            *slog.Logger

	sessions *store.MemoryStore
	router   *router.Router
	engine   *render.Engine
}

// New creates a new [Dashboard] with the given options.
//
// Defaults:
//   - Host: 0.0.0.0
//   - Port: 8050
//   - Seed: 42
//   - Session TTL: 30 minutes
//
// Returns an error if an option is invalid or a chart slot has no data
// source or figure builder bound to it. Binding defects are configuration
// errors and are reported here, before anything is served.
func New(opts ...Option) (*Dashboard, error) {
	cfg := &dashConfig{
		title:             defaultTitle,
		subtitle:          defaultSubtitle,
		footer:            defaultFooter,
		host:              defaultHost,
		port:              defaultPort,
		seed:              render.DefaultSeed,
		sessionTTL:        defaultSessionTTL,
		readHeaderTimeout: defaultReadHeaderTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	registry, err := page.NewRegistry(defaultPages()...)
	if err != nil {
		return nil, fmt.Errorf("invalid page table: %w", err)
	}

	bindings := defaultBindings()
	for id, b := range cfg.bindings {
		bindings[id] = b
	}

	engine, err := render.NewEngine(registry, bindings,
		render.WithSeed(cfg.seed),
		render.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	sessions := store.NewMemoryStore()

	return &Dashboard{
		title:             cfg.title,
		subtitle:          cfg.subtitle,
		footer:            cfg.footer,
		host:              cfg.host,
		port:              cfg.port,
		sessionTTL:        cfg.sessionTTL,
		readHeaderTimeout: cfg.readHeaderTimeout,
		logger:            logger,
		sessions:          sessions,
		router:            router.New(registry, sessions, logger),
		engine:            engine,
	}, nil
}

// Navigate resolves path for the session, makes it the session's active
// route and renders every chart slot: slots of the resolved page get real
// figures, all others the empty placeholder.
//
// An empty sessionID renders without recording a session.
func (d *Dashboard) Navigate(sessionID, path string) PageResult {
	p, state := d.router.Navigate(sessionID, path)
	result := d.engine.RenderPage(p, state)

	if failed := result.Failed(); len(failed) > 0 {
		d.logger.Warn("page rendered with failures",
			"route", p.Route,
			"failed_slots", len(failed),
		)
	}
	return result
}

// Pages returns the page table in navigation order.
func (d *Dashboard) Pages() []Page {
	return d.router.Pages()
}

// Addr returns the configured listen address as host:port.
func (d *Dashboard) Addr() string {
	return net.JoinHostPort(d.host, strconv.Itoa(d.port))
}

// Seed returns the seed passed to the data sources.
func (d *Dashboard) Seed() uint64 {
	return d.engine.Seed()
}

// Start serves the dashboard until ctx is cancelled.
//
// Start is a blocking call. Idle sessions are pruned in the background
// according to the session TTL.
//
// Returns nil on graceful shutdown. Returns an error if the HTTP server fails to start.
func (d *Dashboard) Start(ctx context.Context) error {
	d.logger.Info("paineis starting", "pages", len(d.router.Pages()), "seed", d.engine.Seed())
	d.logger.Info("dashboard available", "addr", d.Addr())

	// check if context already cancelled
	if ctx.Err() != nil {
		return nil
	}

	httpServer := server.NewServer(d, server.Config{
		Addr:              d.Addr(),
		Assets:            dashboard.Assets,
		Title:             d.title,
		Subtitle:          d.subtitle,
		Footer:            d.footer,
		ReadHeaderTimeout: d.readHeaderTimeout,
		Logger:            d.logger,
	})
	if err := httpServer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	// track the pruning goroutine to ensure clean shutdown
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.pruneSessions(ctx)
	}()

	<-ctx.Done()
	wg.Wait()
	d.logger.Info("paineis stopped")
	return nil
}

// pruneSessions drops idle sessions every half TTL until ctx is cancelled.
func (d *Dashboard) pruneSessions(ctx context.Context) {
	interval := d.sessionTTL / 2
	if interval <= 0 {
		interval = d.sessionTTL
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := d.sessions.Prune(now.Add(-d.sessionTTL)); n > 0 {
				d.logger.Debug("sessions pruned", "count", n)
			}
		}
	}
}
