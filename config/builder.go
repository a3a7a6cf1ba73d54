package config

import (
	"log/slog"

	"github.com/jpalmerr/paineis"
)

// BuildOptions converts parsed configuration into dashboard options.
//
// Empty chrome fields keep the dashboard's built-in text. logger may be nil,
// in which case the dashboard falls back to [slog.Default].
func BuildOptions(cfg *Config, logger *slog.Logger) []paineis.Option {
	opts := []paineis.Option{
		paineis.WithHost(cfg.Host),
		paineis.WithPort(cfg.Port),
		paineis.WithSessionTTL(cfg.SessionTTL.Duration()),
	}

	if cfg.Seed != nil {
		opts = append(opts, paineis.WithSeed(*cfg.Seed))
	}
	if cfg.ReadHeaderTimeout > 0 {
		opts = append(opts, paineis.WithReadHeaderTimeout(cfg.ReadHeaderTimeout.Duration()))
	}
	if cfg.Title != "" {
		opts = append(opts, paineis.WithTitle(cfg.Title))
	}
	if cfg.Subtitle != "" {
		opts = append(opts, paineis.WithSubtitle(cfg.Subtitle))
	}
	if cfg.Footer != "" {
		opts = append(opts, paineis.WithFooter(cfg.Footer))
	}
	if logger != nil {
		opts = append(opts, paineis.WithLogger(logger))
	}

	return opts
}

// Level maps the configured level name to a [slog.Level].
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
