package sumserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/wagiedev/mcp-sum-server/internal/mcp"
	"github.com/wagiedev/mcp-sum-server/internal/server"
	"github.com/wagiedev/mcp-sum-server/internal/tools"
)

// Server is an MCP server exposing calculate_sum and any tools added with WithTool.
type Server struct {
	inner *server.Server
}

// New creates a Server. The tool set is fixed once New returns.
func New(opts ...Option) (*Server, error) {
	options := applyOptions(opts)

	registry := internalmcp.NewRegistry()
	if err := tools.Register(registry); err != nil {
		return nil, err
	}

	for _, t := range options.tools {
		if err := registry.Register(t.tool, t.handler); err != nil {
			return nil, fmt.Errorf("register tool: %w", err)
		}
	}

	return &Server{inner: server.New(registry, options.Options)}, nil
}

// ListTools returns the descriptors of all tools, ordered by name.
func (s *Server) ListTools() []*Tool {
	return s.inner.Registry().ListTools()
}

// CallTool invokes the named tool in-process.
//
// An unregistered name fails with *UnknownToolError; bad arguments to
// calculate_sum fail with *InvalidArgumentError. Neither produces a result.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (*CallToolResult, error) {
	return s.inner.Registry().CallTool(ctx, name, args)
}

// Run serves on the configured transport until ctx is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.inner.Run(ctx)
}

// Options returns the effective configuration, defaults applied.
func (s *Server) Options() ServerOptions {
	return s.inner.Options()
}

// MCPServer returns the underlying SDK server, e.g. to connect it to a
// custom transport. Tools must be added with WithTool: a tool added directly
// to the SDK server is advertised by tools/list but rejected as unknown when
// called.
func (s *Server) MCPServer() *mcp.Server {
	return s.inner.MCPServer()
}

// Handler returns the streamable HTTP handler tree (/mcp and /health) for
// embedding in an existing HTTP server.
func (s *Server) Handler() http.Handler {
	return s.inner.Router()
}
