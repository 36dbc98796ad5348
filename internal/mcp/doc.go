// Package mcp implements the tool dispatcher behind the MCP server.
//
// A Registry maps tool names to their descriptor and handler. Discovery and
// invocation both read the same map, so the set of advertised tools is always
// the set of tools that can be called. The registry is installed on an SDK
// server with Install and Middleware, and can also be driven directly in
// library mode through ListTools and CallTool.
package mcp
