// Package errors defines error types for the sum MCP server.
//
// The dispatcher reports failures with the structured types in this package.
// All error types support errors.Is against the package sentinels and can be
// unpacked with errors.As or errors.AsType.
package errors
