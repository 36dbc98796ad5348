package sumserver

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/mcp-sum-server/internal/config"
	internalmcp "github.com/wagiedev/mcp-sum-server/internal/mcp"
	"github.com/wagiedev/mcp-sum-server/internal/tools"
)

// ===== Options and Configuration =====

// ServerOptions configures the server.
type ServerOptions = config.Options

// TransportKind selects how the server talks to its client.
type TransportKind = config.TransportKind

const (
	// TransportStdio serves one session over standard input and output.
	TransportStdio = config.TransportStdio
	// TransportHTTP serves sessions over the streamable HTTP transport.
	TransportHTTP = config.TransportHTTP
)

const (
	// DefaultName is the implementation name reported to clients.
	DefaultName = config.DefaultName
	// DefaultVersion is the implementation version reported to clients.
	DefaultVersion = config.DefaultVersion
)

// ===== Tools =====

// CalculateSumName is the name of the built-in addition tool.
const CalculateSumName = tools.CalculateSumName

// Re-export MCP SDK types used in the public API.
type (
	// Tool is a tool descriptor.
	Tool = mcp.Tool

	// ToolHandler is the function signature for tool handlers.
	ToolHandler = mcp.ToolHandler

	// CallToolRequest is the request passed to tool handlers.
	CallToolRequest = mcp.CallToolRequest

	// CallToolResult is the result of a tool call.
	CallToolResult = mcp.CallToolResult

	// TextContent is a text block in a tool result.
	TextContent = mcp.TextContent

	// Schema is a JSON Schema object for tool input.
	Schema = jsonschema.Schema
)

// SimpleSchema creates an object schema from a name to Go type map.
// Every property is required.
func SimpleSchema(props map[string]string) *jsonschema.Schema {
	return internalmcp.SimpleSchema(props)
}

// NewTool creates a tool descriptor.
func NewTool(name, description string, inputSchema *jsonschema.Schema) *mcp.Tool {
	return internalmcp.NewTool(name, description, inputSchema)
}

// TextResult creates a CallToolResult with a single text block.
func TextResult(text string) *mcp.CallToolResult {
	return internalmcp.TextResult(text)
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	return internalmcp.ParseArguments(req)
}
