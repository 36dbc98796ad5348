package sumserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, opts ...Option) *Server {
	t.Helper()

	srv, err := New(opts...)
	require.NoError(t, err)

	return srv
}

func sumText(t *testing.T, srv *Server, a, b any) string {
	t.Helper()

	result, err := srv.CallTool(context.Background(), CalculateSumName, map[string]any{"a": a, "b": b})
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*TextContent)
	require.True(t, ok, "expected a text block, got %T", result.Content[0])

	return text.Text
}

func TestCallTool_Scenarios(t *testing.T) {
	srv := newServer(t)

	t.Run("integers", func(t *testing.T) {
		require.Equal(t, "the sum is: 5", sumText(t, srv, 2, 3))
	})

	t.Run("fractions cancelling to zero", func(t *testing.T) {
		require.Equal(t, "the sum is: 0", sumText(t, srv, -1.5, 1.5))
	})

	t.Run("unknown tool", func(t *testing.T) {
		result, err := srv.CallTool(context.Background(), "unknown_tool", map[string]any{})
		require.Nil(t, result)
		require.ErrorIs(t, err, ErrUnknownTool)

		unknown, ok := errors.AsType[*UnknownToolError](err)
		require.True(t, ok)
		require.Equal(t, "unknown_tool", unknown.Name)
	})
}

func TestCallTool_Idempotent(t *testing.T) {
	srv := newServer(t)

	first := sumText(t, srv, 19.25, 0.75)
	second := sumText(t, srv, 19.25, 0.75)

	require.Equal(t, "the sum is: 20", first)
	require.Equal(t, first, second)
}

func TestCallTool_InvalidArgument(t *testing.T) {
	srv := newServer(t)

	result, err := srv.CallTool(context.Background(), CalculateSumName, map[string]any{"a": 1})
	require.Nil(t, result)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListTools(t *testing.T) {
	srv := newServer(t)

	tools := srv.ListTools()
	require.Len(t, tools, 1)
	require.Equal(t, CalculateSumName, tools[0].Name)

	raw, err := json.Marshal(tools[0].InputSchema)
	require.NoError(t, err)

	var schema struct {
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))
	require.Equal(t, []string{"a", "b"}, schema.Required)

	require.Equal(t, tools, srv.ListTools())
}

func TestWithTool(t *testing.T) {
	echo := NewTool("echo", "echoes text", SimpleSchema(map[string]string{"text": "string"}))
	srv := newServer(t, WithTool(echo, func(_ context.Context, req *CallToolRequest) (*CallToolResult, error) {
		args, err := ParseArguments(req)
		if err != nil {
			return nil, err
		}

		text, _ := args["text"].(string)

		return TextResult(text), nil
	}))

	tools := srv.ListTools()
	require.Len(t, tools, 2)
	require.Equal(t, CalculateSumName, tools[0].Name)
	require.Equal(t, "echo", tools[1].Name)

	result, err := srv.CallTool(context.Background(), "echo", map[string]any{"text": "hi"})
	require.NoError(t, err)
	require.Equal(t, "hi", result.Content[0].(*TextContent).Text)
}

func TestWithTool_RegistrationErrors(t *testing.T) {
	handler := func(context.Context, *CallToolRequest) (*CallToolResult, error) {
		return TextResult("shadow"), nil
	}

	t.Run("duplicate of built-in", func(t *testing.T) {
		_, err := New(WithTool(NewTool(CalculateSumName, "shadow", SimpleSchema(nil)), handler))
		require.ErrorIs(t, err, ErrToolExists)
	})

	t.Run("nil handler", func(t *testing.T) {
		_, err := New(WithTool(NewTool("broken", "no handler", SimpleSchema(nil)), nil))
		require.ErrorIs(t, err, ErrInvalidTool)
	})

	t.Run("nil input schema", func(t *testing.T) {
		require.NotPanics(t, func() {
			_, err := New(WithTool(NewTool("schemaless", "no schema", nil), handler))
			require.ErrorIs(t, err, ErrInvalidTool)
		})
	})

	t.Run("non-object input schema", func(t *testing.T) {
		require.NotPanics(t, func() {
			_, err := New(WithTool(NewTool("scalar", "string schema", &Schema{Type: "string"}), handler))
			require.ErrorIs(t, err, ErrInvalidTool)
		})
	})
}

func TestMCPServer_InMemorySession(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := srv.MCPServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, session.Close())
		_ = serverSession.Wait()
	}()

	listed, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, listed.Tools, 1)
	require.Equal(t, CalculateSumName, listed.Tools[0].Name)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      CalculateSumName,
		Arguments: map[string]any{"a": 2, "b": 3},
	})
	require.NoError(t, err)
	require.Equal(t, "the sum is: 5", result.Content[0].(*mcp.TextContent).Text)

	_, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "unknown_tool"})
	require.ErrorContains(t, err, "tool not found")
}

func TestHandler_Health(t *testing.T) {
	srv := newServer(t, WithTransport(TransportHTTP))

	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}
