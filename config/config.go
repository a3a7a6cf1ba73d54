// Package config provides YAML configuration parsing for paineis.
//
// This package lets the paineis binary be configured from a file, as an
// alternative to passing options programmatically.
//
// Example configuration:
//
//	title: Painéis Angela Leitte
//	subtitle: Dashboard de exemplo
//	host: 0.0.0.0
//	port: 8050
//	seed: 42
//	session_ttl: 30m
//	read_header_timeout: 5s
//	log_level: info
//	log_format: json
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by [Parse] when a field is absent.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 8050
	DefaultSeed       uint64 = 42
	DefaultSessionTTL        = 30 * time.Minute
	DefaultHeaderTimeout     = 5 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
)

// Config is the root configuration structure for paineis.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML, or [Default] for a
// Config without a file.
type Config struct {
	// Title is the dashboard title. Empty keeps the built-in title.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Title string `yaml:"title"`

	// Subtitle is shown under the title.
	Subtitle string `yaml:"subtitle"`

	// Footer is shown at the bottom of every page.
	Footer string `yaml:"footer"`

	// Host is the interface to bind. Defaults to 0.0.0.0.
	Host string `yaml:"host"`

	// Port is the HTTP server port. Defaults to 8050.
	Port int `yaml:"port"`

	// Seed drives every synthetic data source. Defaults to 42.
	// A pointer so that an explicit 0 is kept.
	Seed *uint64 `yaml:"seed"`

	// SessionTTL is how long an idle session's route is remembered.
	// Accepts duration strings like "30m". Defaults to 30m.
	SessionTTL Duration `yaml:"session_ttl"`

	// ReadHeaderTimeout bounds how long clients may take to send headers.
	// Defaults to 5s.
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `yaml:"log_level"`

	// LogFormat is json or text. Defaults to json.
	LogFormat string `yaml:"log_format"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		// already have an error, skip processing
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded before parsing.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in Title, Subtitle, Footer and Host.
// Defaults are applied for every absent field.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Seed == nil {
		seed := DefaultSeed
		c.Seed = &seed
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = Duration(DefaultSessionTTL)
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = Duration(DefaultHeaderTimeout)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	fields := []struct {
		name string
		ptr  *string
	}{
		{"title", &c.Title},
		{"subtitle", &c.Subtitle},
		{"footer", &c.Footer},
		{"host", &c.Host},
	}
	for _, f := range fields {
		expanded, err := expandEnvVars(*f.ptr)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.ptr = expanded
	}

	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.SessionTTL.Duration() < time.Second {
		return fmt.Errorf("session_ttl must be at least 1s, got %s", c.SessionTTL.Duration())
	}
	if c.ReadHeaderTimeout.Duration() < 0 {
		return fmt.Errorf("read_header_timeout cannot be negative, got %s", c.ReadHeaderTimeout.Duration())
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text, got %q", c.LogFormat)
	}

	return nil
}
