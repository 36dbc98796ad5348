//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// serverBinary is the path of the server built once for the whole package.
var serverBinary string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sum-mcp-server-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create temp dir: %v\n", err)
		os.Exit(1)
	}

	serverBinary = filepath.Join(dir, "sum-mcp-server")

	build := exec.Command("go", "build", "-o", serverBinary, "../cmd/sum-mcp-server")
	build.Stderr = os.Stderr

	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "build server: %v\n", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(dir)
	os.Exit(code)
}

// connectStdio starts the server binary and opens a client session over its
// stdin/stdout. env is appended to the process environment.
func connectStdio(t *testing.T, env ...string) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	cmd := exec.Command(serverBinary)
	cmd.Env = append(os.Environ(), "MCP_ENV_FILE="+filepath.Join(t.TempDir(), "none.env"))
	cmd.Env = append(cmd.Env, env...)

	client := mcp.NewClient(&mcp.Implementation{Name: "integration", Version: "0.0.1"}, nil)

	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = session.Close() })

	return session
}
