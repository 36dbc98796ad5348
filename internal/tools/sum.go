package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	srverr "github.com/wagiedev/mcp-sum-server/internal/errors"
	internalmcp "github.com/wagiedev/mcp-sum-server/internal/mcp"
)

const (
	// CalculateSumName is the name calculate_sum is advertised under.
	CalculateSumName = "calculate_sum"

	calculateSumDescription = "Add two numbers together"
	sumPrefix               = "the sum is: "
)

// CalculateSumTool returns the descriptor for calculate_sum.
func CalculateSumTool() *mcp.Tool {
	tool := internalmcp.NewTool(
		CalculateSumName,
		calculateSumDescription,
		internalmcp.SimpleSchema(map[string]string{"a": "number", "b": "number"}),
	)
	tool.Annotations = &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}

	return tool
}

// CalculateSum adds the numeric arguments a and b.
func CalculateSum(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := internalmcp.ParseArguments(req)
	if err != nil {
		return nil, &srverr.InvalidArgumentError{
			Tool:     CalculateSumName,
			Argument: "arguments",
			Reason:   err.Error(),
		}
	}

	a, err := numberArg(CalculateSumName, args, "a")
	if err != nil {
		return nil, err
	}

	b, err := numberArg(CalculateSumName, args, "b")
	if err != nil {
		return nil, err
	}

	return internalmcp.TextResult(sumPrefix + FormatNumber(a+b)), nil
}

// Register adds every tool in this package to registry.
func Register(registry *internalmcp.Registry) error {
	if err := registry.Register(CalculateSumTool(), CalculateSum); err != nil {
		return fmt.Errorf("register %s: %w", CalculateSumName, err)
	}

	return nil
}

// numberArg reads a required numeric argument.
func numberArg(tool string, args map[string]any, name string) (float64, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, &srverr.InvalidArgumentError{Tool: tool, Argument: name, Reason: "required"}
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &srverr.InvalidArgumentError{Tool: tool, Argument: name, Reason: err.Error()}
		}

		return f, nil
	default:
		return 0, &srverr.InvalidArgumentError{
			Tool:     tool,
			Argument: name,
			Reason:   fmt.Sprintf("expected a number, got %T", raw),
		}
	}
}
