// Package config provides configuration types for the sum MCP server.
package config
