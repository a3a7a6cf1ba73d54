// Package paineis serves a small multi-page analytics dashboard.
//
// A single process serves three pages (Início, Vendas, Operações), each
// rendering a fixed set of charts computed from synthetic data. Every GET of
// a page path is a navigation event: the path is resolved to a page (unknown
// paths fall back to Início), the session's active route is updated, and
// only the charts of that page are computed. Charts of other pages receive
// an empty placeholder figure.
//
// # Quick Start
//
//	d, err := paineis.New(paineis.WithPort(8050))
//	if err != nil {
//	    slog.Error("failed to create dashboard", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	d.Start(ctx) // blocks until context is cancelled
//
// # Rendering without a server
//
// [Dashboard.Navigate] runs the same navigation the HTTP layer runs and
// returns the resolved page with a result for every known chart slot:
//
//	res := d.Navigate("", "/operacoes")
//	for _, slot := range res.ActiveSlots() {
//	    fmt.Println(slot.Slot.ID, slot.Figure.Kind)
//	}
//
// # Determinism
//
// Every data source builds its own random generator from the configured seed
// ([WithSeed]) and a per-domain salt. Renders of the same page with the same
// seed are identical, and the order in which charts are computed never
// changes their data.
//
// # Architecture
//
// paineis consists of several internal packages (under internal/):
//
//   - internal/data: Synthetic dataset generators
//   - internal/figure: Dataset to chart description builders and the theme
//   - internal/page: The static route table
//   - internal/router: Path resolution and per-slot activity
//   - internal/render: The render engine and slot bindings
//   - internal/store: Per-session active route
//   - internal/server: HTTP server and JSON API
//   - dashboard: Embedded page template
//
// The internal packages are not part of the public API and may change
// without notice.
package paineis
