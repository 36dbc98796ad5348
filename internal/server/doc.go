// Package server attaches the tool registry to the MCP SDK and runs it over a
// transport.
//
// New builds an SDK server whose tool list is the registry's and whose
// tools/call requests are routed through the registry's dispatch middleware.
// Run serves it over stdio (one session, the default) or streamable HTTP
// (many sessions, with a /health endpoint).
package server
