package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jpalmerr/paineis/internal/figure"
	"github.com/jpalmerr/paineis/internal/page"
	"github.com/jpalmerr/paineis/internal/render"
)

const (
	// defaultTitle is used when no custom title is configured.
	defaultTitle = "Painéis"

	// sessionCookie carries the session id that scopes the active route.
	sessionCookie = "paineis_session"

	// templatePath is the page template inside the assets filesystem.
	templatePath = "assets/index.html"

	shutdownTimeout = 5 * time.Second
)

// Navigator runs navigation events for the server.
type Navigator interface {
	// Navigate resolves path for the session and renders the result.
	Navigate(sessionID, path string) render.PageResult

	// Pages returns the page catalogue in navigation order.
	Pages() []page.Page
}

// Config holds the server settings.
type Config struct {
	// Addr is the host:port to listen on. Port 0 picks a free port.
	Addr string

	// Assets holds the page template at assets/index.html (may be nil).
	Assets fs.FS

	// Title, Subtitle and Footer are the page chrome.
	Title    string
	Subtitle string
	Footer   string

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration

	Logger *slog.Logger
}

// Server handles HTTP requests for the dashboard and its API.
type Server struct {
	nav    Navigator
	cfg    Config
	logger *slog.Logger

	tmpl    *template.Template
	tmplErr error

	httpServer *http.Server
	listener   net.Listener
}

// NewServer creates a new HTTP [Server].
//
// The page template is parsed here; a parse failure is reported by
// [Server.Start]. The server is not started until Start is called.
func NewServer(nav Navigator, cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Title == "" {
		cfg.Title = defaultTitle
	}

	s := &Server{
		nav:    nav,
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Assets != nil {
		s.tmpl, s.tmplErr = parseTemplate(cfg.Assets)
	}
	return s
}

func parseTemplate(assets fs.FS) (*template.Template, error) {
	content, err := fs.ReadFile(assets, templatePath)
	if err != nil {
		return nil, err
	}
	return template.New("index").Parse(string(content))
}

// Handler returns the request router. It is used by Start and by tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/page", s.handlePage)
	mux.HandleFunc("/api/pages", s.handlePages)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/favicon.ico", http.NotFound)
	mux.HandleFunc("/", s.handleDashboard)

	return mux
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns once the listener is bound. The server
// runs until ctx is cancelled, then shuts down gracefully with a 5-second
// timeout.
//
// Returns an error if the template failed to parse or the address cannot be bound.
func (s *Server) Start(ctx context.Context) error {
	if s.tmplErr != nil {
		return fmt.Errorf("failed to load dashboard template: %w", s.tmplErr)
	}

	// create listener first to verify address availability synchronously
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind to %s: %w", s.cfg.Addr, err)
	}
	s.listener = ln

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server error", "error", err)
		}
	}()

	// shutdown on context cancellation
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
	}()

	return nil
}

// Addr returns the bound listener address, or the configured address
// before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Addr
}

// sessionID returns the request's session id, issuing a new cookie when the
// request has none or carries a malformed one.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

type navLink struct {
	Route   string
	Title   string
	Current bool
}

type slotView struct {
	ID            string
	Title         string
	Error         string
	CorrelationID string
}

type pageView struct {
	Title     string
	Subtitle  string
	Footer    string
	PageTitle string
	Route     string
	Nav       []navLink
	Slots     []slotView

	// Figures maps slot id to figure for every active slot that rendered.
	// html/template encodes it as JSON inside the script element.
	Figures map[string]figure.Figure
}

// handleDashboard treats the request path as a navigation event and serves
// the rendered page. Unknown paths render the home page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.tmpl == nil {
		http.Error(w, "Dashboard not found", http.StatusInternalServerError)
		return
	}

	sid := s.sessionID(w, r)
	result := s.nav.Navigate(sid, r.URL.Path)

	view := pageView{
		Title:     s.cfg.Title,
		Subtitle:  s.cfg.Subtitle,
		Footer:    s.cfg.Footer,
		PageTitle: result.Page.Title,
		Route:     result.Page.Route,
		Figures:   make(map[string]figure.Figure),
	}
	for _, p := range s.nav.Pages() {
		view.Nav = append(view.Nav, navLink{Route: p.Route, Title: p.Title, Current: p.Route == result.Page.Route})
	}
	for _, slot := range result.ActiveSlots() {
		sv := slotView{ID: slot.Slot.ID, Title: slot.Slot.Title}
		var se *render.SlotError
		switch {
		case errors.As(slot.Err, &se):
			sv.Error = "Falha ao gerar o gráfico"
			sv.CorrelationID = se.CorrelationID
		case slot.Err != nil:
			sv.Error = "Falha ao gerar o gráfico"
		default:
			view.Figures[slot.Slot.ID] = slot.Figure
		}
		view.Slots = append(view.Slots, sv)
	}

	// render into a buffer so a template error can still produce a 500
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, view); err != nil {
		s.logger.Error("failed to render dashboard", "route", result.Page.Route, "error", err)
		http.Error(w, "Dashboard render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Error("failed to write dashboard response", "error", err)
	}
}

// slotResponse is the JSON form of one slot's result.
type slotResponse struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Active        bool          `json:"active"`
	Figure        figure.Figure `json:"figure"`
	Error         *string       `json:"error"`
	CorrelationID string        `json:"correlation_id,omitempty"`
}

// pageResponse is the JSON form of one navigation.
type pageResponse struct {
	Route string         `json:"route"`
	Title string         `json:"title"`
	Slots []slotResponse `json:"slots"`
}

func newPageResponse(result render.PageResult) pageResponse {
	resp := pageResponse{
		Route: result.Page.Route,
		Title: result.Page.Title,
		Slots: make([]slotResponse, 0, len(result.Slots)),
	}
	for _, slot := range result.Slots {
		sr := slotResponse{
			ID:     slot.Slot.ID,
			Title:  slot.Slot.Title,
			Active: slot.Active,
			Figure: slot.Figure,
		}
		if slot.Err != nil {
			msg := slot.Err.Error()
			sr.Error = &msg
			var se *render.SlotError
			if errors.As(slot.Err, &se) {
				sr.CorrelationID = se.CorrelationID
			}
		}
		resp.Slots = append(resp.Slots, sr)
	}
	return resp
}

// EncodePage writes result to w in the same JSON form served by
// /api/page, indented for humans.
func EncodePage(w io.Writer, result render.PageResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newPageResponse(result))
}

// handlePage runs a navigation for the "path" query parameter and returns
// the result of every known slot as JSON.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sid := s.sessionID(w, r)
	result := s.nav.Navigate(sid, r.URL.Query().Get("path"))
	s.writeJSON(w, newPageResponse(result))
}

// handlePages returns the page catalogue as JSON.
func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, s.nav.Pages())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
