package sumserver

import (
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/mcp-sum-server/internal/config"
)

// Option configures a Server using the functional options pattern.
type Option func(*serverOptions)

// serverOptions is ServerOptions plus the extra tools to register.
type serverOptions struct {
	config.Options
	tools []toolRegistration
}

type toolRegistration struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// applyOptions applies functional options to a serverOptions struct.
func applyOptions(opts []Option) *serverOptions {
	options := &serverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithOptions replaces the base configuration, e.g. one loaded from the
// environment. Options given after it still apply on top.
func WithOptions(base ServerOptions) Option {
	return func(o *serverOptions) {
		o.Options = base
	}
}

// WithLogger sets the logger for server output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *serverOptions) {
		o.Logger = logger
	}
}

// WithName sets the implementation name reported to clients.
func WithName(name string) Option {
	return func(o *serverOptions) {
		o.Name = name
	}
}

// WithVersion sets the implementation version reported to clients.
func WithVersion(version string) Option {
	return func(o *serverOptions) {
		o.Version = version
	}
}

// WithTransport selects stdio (the default) or streamable HTTP.
func WithTransport(kind TransportKind) Option {
	return func(o *serverOptions) {
		o.Transport = kind
	}
}

// WithHTTPAddr sets the listen address of the HTTP transport.
func WithHTTPAddr(addr string) Option {
	return func(o *serverOptions) {
		o.HTTPAddr = addr
	}
}

// WithShutdownTimeout bounds graceful shutdown of the HTTP transport.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *serverOptions) {
		o.ShutdownTimeout = d
	}
}

// WithTool registers an additional tool alongside calculate_sum.
// Registration errors surface from New.
func WithTool(tool *Tool, handler ToolHandler) Option {
	return func(o *serverOptions) {
		o.tools = append(o.tools, toolRegistration{tool: tool, handler: handler})
	}
}
