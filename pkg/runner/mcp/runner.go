package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/lanes/pkg/app"
	"tableflip.dev/lanes/pkg/store"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

// ParseTransport accepts "http", "stdio" or empty (http).
func ParseTransport(s string) (Transport, error) {
	switch t := Transport(s); t {
	case "":
		return TransportHTTP, nil
	case TransportHTTP, TransportStdio:
		return t, nil
	}
	return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", s)
}

// Runner serves one board over MCP until ctx is done.
type Runner struct {
	Controller *app.Controller
	// Watcher, when set, reloads the board after other processes write it.
	Watcher store.Watcher
	Version string

	Transport Transport
	// Addr and Path locate the HTTP endpoint.
	Addr string
	Path string
	// CertFile and KeyFile switch HTTP to HTTPS. Both or neither.
	CertFile string
	KeyFile  string
	// Out receives the listening URL.
	Out io.Writer
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Controller == nil {
		return errors.New("mcp runner requires a board")
	}
	if r.Watcher != nil {
		if err := r.Controller.Follow(ctx, r.Watcher); err != nil {
			log.WithError(err).Warn("mcp: not watching for external changes")
		}
	}

	srv := NewServer(r.Controller, r.Version)
	if r.Transport == TransportStdio {
		return server.ServeStdio(srv)
	}
	return r.serveHTTP(ctx, srv)
}

// NewServer builds the lanes MCP server with its tools and resources.
func NewServer(c *app.Controller, version string) *server.MCPServer {
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer("lanes", version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read the task board and add, move, edit or search its items."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(c)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	tls := r.CertFile != "" || r.KeyFile != ""
	if tls && (r.CertFile == "" || r.KeyFile == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	addr, path := r.Addr, r.Path
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	if path == "" {
		path = "/mcp"
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if r.Out != nil {
		scheme := "http"
		if tls {
			scheme = "https"
		}
		fmt.Fprintf(r.Out, "MCP server listening on %s://%s%s\n", scheme, ln.Addr(), path)
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = hs.Shutdown(sctx)
	}()

	if tls {
		err = hs.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = hs.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
