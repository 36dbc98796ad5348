package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	srverr "github.com/wagiedev/mcp-sum-server/internal/errors"
)

// MethodCallTool is the JSON-RPC method name of a tool invocation.
const MethodCallTool = "tools/call"

// Registry is the tool dispatcher: a name-keyed table of tools and handlers.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*entry
}

// entry holds tool metadata and handler for the registry.
type entry struct {
	tool    *mcp.Tool
	handler mcp.ToolHandler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*entry, 4),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool *mcp.Tool, handler mcp.ToolHandler) error {
	if tool == nil || strings.TrimSpace(tool.Name) == "" || handler == nil {
		return srverr.ErrInvalidTool
	}

	if !isObjectSchema(tool.InputSchema) {
		return fmt.Errorf("%w: %s: input schema must have type \"object\"", srverr.ErrInvalidTool, tool.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", srverr.ErrToolExists, tool.Name)
	}

	r.tools[tool.Name] = &entry{
		tool:    tool,
		handler: handler,
	}

	return nil
}

// ListTools returns the descriptors of all registered tools, ordered by name.
func (r *Registry) ListTools() []*mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*mcp.Tool, 0, len(r.tools))
	for _, e := range r.tools {
		tool := *e.tool
		result = append(result, &tool)
	}

	slices.SortFunc(result, func(a, b *mcp.Tool) int {
		return strings.Compare(a.Name, b.Name)
	})

	return result
}

// Handle dispatches a call request to the handler registered under its name.
// An unregistered name yields *srverr.UnknownToolError and no result.
func (r *Registry) Handle(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var name string
	if req != nil && req.Params != nil {
		name = req.Params.Name
	}

	e, exists := r.lookup(name)
	if !exists {
		return nil, &srverr.UnknownToolError{Name: name}
	}

	result, err := e.handler(ctx, req)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return &mcp.CallToolResult{Content: []mcp.Content{}}, nil
	}

	// Handlers may return shared results; normalize a copy.
	res := *result
	if res.Content == nil {
		res.Content = []mcp.Content{}
	}

	return &res, nil
}

// CallTool executes a tool by name with already-decoded arguments.
func (r *Registry) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if _, exists := r.lookup(name); !exists {
		return nil, &srverr.UnknownToolError{Name: name}
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name: name,
		},
	}

	if args != nil {
		raw, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal arguments: %w", err)
		}

		req.Params.Arguments = raw
	}

	return r.Handle(ctx, req)
}

func (r *Registry) lookup(name string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.tools[name]

	return e, exists
}

// isObjectSchema reports whether schema serializes to a JSON schema of type
// "object", the only input schema the SDK server accepts.
func isObjectSchema(schema any) bool {
	if schema == nil {
		return false
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return false
	}

	var head struct {
		Type any `json:"type"`
	}

	if err := json.Unmarshal(raw, &head); err != nil {
		return false
	}

	return head.Type == "object"
}

// Install registers every tool with server so the SDK's tools/list response
// carries exactly the registry contents.
func (r *Registry) Install(server *mcp.Server) {
	for _, tool := range r.ListTools() {
		server.AddTool(tool, r.Handle)
	}
}

// Middleware returns receiving middleware that routes every tools/call
// request through Handle. Dispatcher errors are translated into JSON-RPC
// invalid-params errors; everything else passes through untouched.
func (r *Registry) Middleware() mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			call, ok := req.(*mcp.CallToolRequest)
			if method != MethodCallTool || !ok {
				return next(ctx, method, req)
			}

			result, err := r.Handle(ctx, call)
			if err != nil {
				return nil, protocolError(err)
			}

			return result, nil
		}
	}
}

// protocolError converts dispatcher errors into JSON-RPC errors.
func protocolError(err error) error {
	if _, ok := errors.AsType[srverr.ServerError](err); !ok {
		return err
	}

	return &jsonrpc.Error{
		Code:    jsonrpc.CodeInvalidParams,
		Message: err.Error(),
	}
}
