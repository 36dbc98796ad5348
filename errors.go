package sumserver

import "github.com/wagiedev/mcp-sum-server/internal/errors"

// Re-export error types from internal package

// UnknownToolError indicates a call named a tool that is not registered.
type UnknownToolError = errors.UnknownToolError

// InvalidArgumentError indicates a tool argument was missing or of the wrong type.
type InvalidArgumentError = errors.InvalidArgumentError

// ServerError is the base interface for all server errors.
type ServerError = errors.ServerError

// Re-export sentinel errors from internal package.
var (
	// ErrUnknownTool matches any *UnknownToolError.
	ErrUnknownTool = errors.ErrUnknownTool

	// ErrInvalidArgument matches any *InvalidArgumentError.
	ErrInvalidArgument = errors.ErrInvalidArgument

	// ErrToolExists indicates a tool with the same name is already registered.
	ErrToolExists = errors.ErrToolExists

	// ErrInvalidTool indicates a tool registration without a name or handler.
	ErrInvalidTool = errors.ErrInvalidTool

	// ErrUnsupportedTransport indicates the configured transport kind is not known.
	ErrUnsupportedTransport = errors.ErrUnsupportedTransport
)
