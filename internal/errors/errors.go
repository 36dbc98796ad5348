package errors

import (
	"errors"
	"fmt"
)

// ServerError is the base interface for all server errors.
type ServerError interface {
	error
	IsServerError() bool
}

// Compile-time verification that all error types implement ServerError.
var (
	_ ServerError = (*UnknownToolError)(nil)
	_ ServerError = (*InvalidArgumentError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrUnknownTool indicates a call named a tool that is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidArgument indicates a tool argument was missing or of the wrong type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrToolExists indicates a tool with the same name is already registered.
	ErrToolExists = errors.New("tool already registered")

	// ErrInvalidTool indicates a tool registration without a name or handler.
	ErrInvalidTool = errors.New("invalid tool registration")

	// ErrUnsupportedTransport indicates the configured transport kind is not known.
	ErrUnsupportedTransport = errors.New("unsupported transport")
)

// UnknownToolError indicates an invocation named a tool outside the advertised set.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("tool not found: %s", e.Name)
}

// Is reports whether target is ErrUnknownTool.
func (e *UnknownToolError) Is(target error) bool {
	return target == ErrUnknownTool
}

// IsServerError implements ServerError.
func (e *UnknownToolError) IsServerError() bool { return true }

// InvalidArgumentError indicates a tool argument failed the handler's type check.
type InvalidArgumentError struct {
	Tool     string
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q for tool %s: %s", e.Argument, e.Tool, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IsServerError implements ServerError.
func (e *InvalidArgumentError) IsServerError() bool { return true }
