package mcp

import (
	"context"
	"strings"
	"testing"
	"time"
)

type lineWriter chan string

func (w lineWriter) Write(p []byte) (int, error) {
	w <- string(p)
	return len(p), nil
}

func TestParseTransport(t *testing.T) {
	for in, want := range map[string]Transport{"": TransportHTTP, "http": TransportHTTP, "stdio": TransportStdio} {
		got, err := ParseTransport(in)
		if err != nil || got != want {
			t.Fatalf("expected %q for %q, got %q (%v)", want, in, got, err)
		}
	}
	if _, err := ParseTransport("sse"); err == nil {
		t.Fatalf("expected error for sse")
	}
}

func TestRunnerRequiresController(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without a board")
	}
}

func TestRunnerRejectsHalfTLS(t *testing.T) {
	svc := newTestService(t, &memoryGateway{})
	r := Runner{Controller: svc.Controller, CertFile: "cert.pem"}
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for cert without key")
	}
}

func TestRunnerServesHTTPUntilCancelled(t *testing.T) {
	svc := newTestService(t, &memoryGateway{})
	out := make(lineWriter, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Runner{Controller: svc.Controller, Addr: "127.0.0.1:0", Path: "/board", Out: out}.Do(ctx)
	}()

	select {
	case line := <-out:
		if !strings.HasPrefix(line, "MCP server listening on http://127.0.0.1:") || !strings.HasSuffix(line, "/board\n") {
			t.Fatalf("expected listening url, got %q", line)
		}
	case err := <-done:
		t.Fatalf("runner stopped early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("runner never started listening")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("runner did not stop")
	}
}
