package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/mcp-sum-server/internal/config"
	srverr "github.com/wagiedev/mcp-sum-server/internal/errors"
	internalmcp "github.com/wagiedev/mcp-sum-server/internal/mcp"
)

// Server couples a tool registry with an SDK server.
type Server struct {
	opts     config.Options
	logger   *slog.Logger
	registry *internalmcp.Registry
	mcp      *mcp.Server
}

// New creates a Server serving the tools in registry.
// The registry must be fully populated before New is called.
func New(registry *internalmcp.Registry, opts config.Options) *Server {
	opts = opts.WithDefaults()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sdkServer := mcp.NewServer(&mcp.Implementation{
		Name:    opts.Name,
		Version: opts.Version,
	}, nil)

	registry.Install(sdkServer)
	sdkServer.AddReceivingMiddleware(
		loggingMiddleware(logger),
		registry.Middleware(),
	)

	return &Server{
		opts:     opts,
		logger:   logger,
		registry: registry,
		mcp:      sdkServer,
	}
}

// MCPServer returns the underlying SDK server. Tools registered on it
// directly bypass the registry and are never dispatched.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Registry returns the tool registry the server dispatches to.
func (s *Server) Registry() *internalmcp.Registry {
	return s.registry
}

// Options returns the effective options, defaults applied.
func (s *Server) Options() config.Options {
	return s.opts
}

// Run serves on the configured transport until ctx is cancelled or the
// transport closes. Cancellation is not reported as an error.
func (s *Server) Run(ctx context.Context) error {
	var err error

	switch s.opts.Transport {
	case config.TransportStdio:
		err = s.RunStdio(ctx)
	case config.TransportHTTP:
		err = s.RunHTTP(ctx)
	default:
		return fmt.Errorf("%w: %q", srverr.ErrUnsupportedTransport, s.opts.Transport)
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// RunStdio serves a single session over standard input and output.
func (s *Server) RunStdio(ctx context.Context) error {
	s.logger.InfoContext(ctx, "serving over stdio",
		slog.String("name", s.opts.Name),
		slog.String("version", s.opts.Version),
		slog.Int("tools", len(s.registry.ListTools())),
	)

	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
