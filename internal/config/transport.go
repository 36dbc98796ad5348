package config

import (
	"fmt"
	"strings"

	"github.com/wagiedev/mcp-sum-server/internal/errors"
)

// TransportKind selects how the server talks to its client.
type TransportKind string

const (
	// TransportStdio serves one session over standard input and output.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves sessions over the streamable HTTP transport.
	TransportHTTP TransportKind = "http"
)

// ParseTransportKind maps a configuration string to a TransportKind.
// The empty string selects stdio.
func ParseTransportKind(s string) (TransportKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(TransportStdio):
		return TransportStdio, nil
	case string(TransportHTTP), "streamable-http":
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrUnsupportedTransport, s)
	}
}
