package sumserver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUnknownToolError_ReExport tests the re-exported UnknownToolError.
func TestUnknownToolError_ReExport(t *testing.T) {
	err := fmt.Errorf("call failed: %w", &UnknownToolError{Name: "unknown_tool"})

	require.ErrorIs(t, err, ErrUnknownTool)
	require.Contains(t, err.Error(), "tool not found: unknown_tool")

	serverErr, ok := errors.AsType[ServerError](err)
	require.True(t, ok)
	require.True(t, serverErr.IsServerError())
}

// TestInvalidArgumentError_ReExport tests the re-exported InvalidArgumentError.
func TestInvalidArgumentError_ReExport(t *testing.T) {
	err := &InvalidArgumentError{Tool: CalculateSumName, Argument: "b", Reason: "required"}

	require.ErrorIs(t, err, ErrInvalidArgument)
	require.NotErrorIs(t, err, ErrUnknownTool)
	require.Contains(t, err.Error(), `invalid argument "b"`)
}
