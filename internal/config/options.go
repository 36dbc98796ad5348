package config

import (
	"log/slog"
	"time"
)

const (
	// DefaultName is the implementation name reported during initialization.
	DefaultName = "mcp-server"
	// DefaultVersion is the implementation version reported during initialization.
	DefaultVersion = "1.0.0"
	// DefaultHTTPAddr is the listen address of the HTTP transport.
	DefaultHTTPAddr = ":8080"
	// DefaultShutdownTimeout bounds how long the HTTP transport drains on exit.
	DefaultShutdownTimeout = 5 * time.Second
)

// Options configures the server.
type Options struct {
	// Logger is the slog logger for server output.
	// If nil, logging is disabled (silent operation).
	Logger *slog.Logger

	// Name is the implementation name sent to clients.
	Name string

	// Version is the implementation version sent to clients.
	Version string

	// Transport selects stdio or streamable HTTP.
	Transport TransportKind

	// HTTPAddr is the listen address used when Transport is TransportHTTP.
	HTTPAddr string

	// ShutdownTimeout bounds graceful shutdown of the HTTP transport.
	ShutdownTimeout time.Duration
}

// WithDefaults returns a copy of o with every unset field filled in.
func (o Options) WithDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultName
	}

	if o.Version == "" {
		o.Version = DefaultVersion
	}

	if o.Transport == "" {
		o.Transport = TransportStdio
	}

	if o.HTTPAddr == "" {
		o.HTTPAddr = DefaultHTTPAddr
	}

	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = DefaultShutdownTimeout
	}

	return o
}
