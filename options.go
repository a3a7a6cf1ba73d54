package paineis

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jpalmerr/paineis/internal/render"
)

// dashConfig holds mutable state during Dashboard construction.
type dashConfig struct {
	title             string
	subtitle          string
	footer            string
	host              string
	port              int
	seed              uint64
	sessionTTL        time.Duration
	readHeaderTimeout time.Duration
	logger            *slog.Logger

	// bindings overrides slot bindings by id; used by tests
	bindings map[string]render.Binding
}

// Option is a function that configures a [Dashboard] during construction.
//
// Options return an error if validation fails.
//
// Built-in options: [WithTitle], [WithSubtitle], [WithFooter], [WithHost],
// [WithPort], [WithSeed], [WithSessionTTL], [WithReadHeaderTimeout],
// [WithLogger].
type Option func(*dashConfig) error

// WithTitle sets the dashboard title shown in the header and browser tab.
//
// Defaults to "Painéis Angela Leitte".
func WithTitle(title string) Option {
	return func(cfg *dashConfig) error {
		cfg.title = title
		return nil
	}
}

// WithSubtitle sets the line shown under the title. Empty hides it.
func WithSubtitle(subtitle string) Option {
	return func(cfg *dashConfig) error {
		cfg.subtitle = subtitle
		return nil
	}
}

// WithFooter sets the page footer text. Empty hides it.
func WithFooter(footer string) Option {
	return func(cfg *dashConfig) error {
		cfg.footer = footer
		return nil
	}
}

// WithHost sets the interface the HTTP server binds to.
//
// Defaults to "0.0.0.0".
func WithHost(host string) Option {
	return func(cfg *dashConfig) error {
		if host == "" {
			return errors.New("host cannot be empty")
		}
		cfg.host = host
		return nil
	}
}

// WithPort sets the HTTP port for the dashboard server.
//
// Defaults to 8050. Returns an error if the port is outside 1-65535.
func WithPort(port int) Option {
	return func(cfg *dashConfig) error {
		if port < 1 || port > 65535 {
			return errors.New("port must be between 1 and 65535")
		}
		cfg.port = port
		return nil
	}
}

// WithSeed sets the seed every data source derives its generator from.
//
// Defaults to 42.
func WithSeed(seed uint64) Option {
	return func(cfg *dashConfig) error {
		cfg.seed = seed
		return nil
	}
}

// WithSessionTTL sets how long an idle session's active route is kept.
//
// Defaults to 30 minutes. Returns an error if the duration is not positive.
func WithSessionTTL(d time.Duration) Option {
	return func(cfg *dashConfig) error {
		if d <= 0 {
			return errors.New("session ttl must be positive")
		}
		cfg.sessionTTL = d
		return nil
	}
}

// WithReadHeaderTimeout bounds how long clients may take to send request
// headers. Defaults to 5 seconds.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(cfg *dashConfig) error {
		if d <= 0 {
			return errors.New("read header timeout must be positive")
		}
		cfg.readHeaderTimeout = d
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the dashboard.
//
// If not specified, [slog.Default] is used. Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *dashConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}
