package paineis

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	d, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if d.Addr() != "0.0.0.0:8050" {
		t.Errorf("Addr() = %q, want %q", d.Addr(), "0.0.0.0:8050")
	}
	if d.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", d.Seed())
	}
	if d.title != defaultTitle {
		t.Errorf("title = %q, want %q", d.title, defaultTitle)
	}
	if d.sessionTTL != 30*time.Minute {
		t.Errorf("sessionTTL = %v, want 30m", d.sessionTTL)
	}
}

func TestNew_Options(t *testing.T) {
	d, err := New(
		WithTitle("Custom"),
		WithSubtitle("Sub"),
		WithFooter("Foot"),
		WithHost("127.0.0.1"),
		WithPort(9090),
		WithSeed(7),
		WithSessionTTL(time.Minute),
		WithReadHeaderTimeout(time.Second),
		WithLogger(testLogger()),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if d.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9090", d.Addr())
	}
	if d.Seed() != 7 {
		t.Errorf("Seed() = %d, want 7", d.Seed())
	}
	if d.title != "Custom" || d.subtitle != "Sub" || d.footer != "Foot" {
		t.Errorf("chrome = %q/%q/%q", d.title, d.subtitle, d.footer)
	}
	if d.sessionTTL != time.Minute || d.readHeaderTimeout != time.Second {
		t.Errorf("sessionTTL/readHeaderTimeout = %v/%v", d.sessionTTL, d.readHeaderTimeout)
	}
}

func TestNew_IPv6Host(t *testing.T) {
	d, err := New(WithHost("::1"), WithPort(8050))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if d.Addr() != "[::1]:8050" {
		t.Errorf("Addr() = %q, want [::1]:8050", d.Addr())
	}
}

func TestOptions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"port zero", WithPort(0)},
		{"port too high", WithPort(65536)},
		{"empty host", WithHost("")},
		{"zero ttl", WithSessionTTL(0)},
		{"negative header timeout", WithReadHeaderTimeout(-time.Second)},
		{"nil logger", WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Error("New() expected error, got nil")
			}
		})
	}
}
