// Command sum-mcp-server runs the calculate_sum MCP server.
//
// By default it speaks MCP over stdin/stdout and logs to stderr. Set
// MCP_TRANSPORT=http to serve the streamable HTTP transport on MCP_HTTP_ADDR
// instead. Configuration may also come from a .env file (MCP_ENV_FILE).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sumserver "github.com/wagiedev/mcp-sum-server"
	"github.com/wagiedev/mcp-sum-server/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sum-mcp-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := sumserver.NewLogger(os.Stderr, env.LogLevel)

	srv, err := sumserver.New(
		sumserver.WithOptions(env.Options),
		sumserver.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")

	return nil
}
