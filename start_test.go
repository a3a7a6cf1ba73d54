package paineis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// TestStart_ServesUntilContextCancelled verifies that Start serves pages and
// blocks until the provided context is cancelled.
func TestStart_ServesUntilContextCancelled(t *testing.T) {
	// use a high port to avoid conflicts
	d := newTestDashboard(t, WithHost("127.0.0.1"), WithPort(19051))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.Start(ctx)
	}()

	client := &http.Client{Timeout: 2 * time.Second}
	defer client.CloseIdleConnections()

	var body string
	deadline := time.Now().Add(3 * time.Second)
	for {
		resp, err := client.Get(fmt.Sprintf("http://%s/operacoes", d.Addr()))
		if err == nil {
			b, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			body = string(b)
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never came up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	if !strings.Contains(body, "Operações") {
		t.Errorf("page body missing title, got: %s", body)
	}

	// verify Start is still blocking
	select {
	case err := <-done:
		t.Fatalf("Start() returned early with error: %v", err)
	default:
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after context cancellation")
	}
}

// TestStart_ReturnsImmediatelyIfContextAlreadyCancelled verifies that Start
// returns immediately if the context is already cancelled.
func TestStart_ReturnsImmediatelyIfContextAlreadyCancelled(t *testing.T) {
	d := newTestDashboard(t, WithHost("127.0.0.1"), WithPort(19052))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- d.Start(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Start() should return immediately for cancelled context")
	}
}

func TestPruneSessions_DropsIdleSessions(t *testing.T) {
	d := newTestDashboard(t, WithSessionTTL(40*time.Millisecond))
	d.sessions.Record("idle", RouteSales, time.Now().Add(-time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.pruneSessions(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, ok := d.sessions.Get("idle"); !ok {
			break
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("idle session was not pruned")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	<-done
}

func TestStart_PortInUse_ReturnsError(t *testing.T) {
	first := newTestDashboard(t, WithHost("127.0.0.1"), WithPort(19053))
	second := newTestDashboard(t, WithHost("127.0.0.1"), WithPort(19053))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- first.Start(ctx)
	}()

	// wait until the first dashboard is listening
	client := &http.Client{Timeout: time.Second}
	defer client.CloseIdleConnections()
	deadline := time.Now().Add(3 * time.Second)
	for {
		resp, err := client.Get("http://127.0.0.1:19053/healthz")
		if err == nil {
			_ = resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("first dashboard never came up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	err := second.Start(ctx)
	if err == nil || !strings.Contains(err.Error(), "failed to start HTTP server") {
		t.Errorf("second Start() error = %v, want bind failure", err)
	}

	cancel()
	<-done
}
