package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lanes/pkg/runner/mcp"
)

type mcpOptions struct {
	transport string
	host      string
	port      int
	path      string
	certFile  string
	keyFile   string
}

func (o mcpOptions) runner() (mcp.Runner, error) {
	t, err := mcp.ParseTransport(strings.ToLower(strings.TrimSpace(o.transport)))
	if err != nil {
		return mcp.Runner{}, err
	}
	if o.port < 0 || o.port > 65535 {
		return mcp.Runner{}, fmt.Errorf("invalid http-port %d", o.port)
	}
	host := strings.TrimSpace(o.host)
	if host == "" {
		host = "127.0.0.1"
	}
	path := strings.TrimSpace(o.path)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return mcp.Runner{
		Version:   version,
		Transport: t,
		Addr:      net.JoinHostPort(host, strconv.Itoa(o.port)),
		Path:      path,
		CertFile:  strings.TrimSpace(o.certFile),
		KeyFile:   strings.TrimSpace(o.keyFile),
	}, nil
}

func addMCP(topLevel *cobra.Command) {
	var o mcpOptions

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the board and its add, move, edit and
search operations. The served board follows writes made by other lanes
processes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			r, err := o.runner()
			if err != nil {
				return err
			}
			s, err := openBoard(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			r.Controller = s.Controller
			r.Watcher = s.Watcher()
			if r.Transport == mcp.TransportHTTP {
				r.Out = cmd.OutOrStdout()
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&o.transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&o.host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&o.port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&o.path, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&o.certFile, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&o.keyFile, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}
