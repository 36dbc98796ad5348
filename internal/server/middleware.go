package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"
)

// loggingMiddleware tags every incoming request with a ULID and logs its
// outcome. Failures are logged at warn, everything else at debug.
func loggingMiddleware(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()
			attrs := []any{
				slog.String("request_id", ulid.Make().String()),
				slog.String("method", method),
			}

			if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
				attrs = append(attrs, slog.String("tool", call.Params.Name))
			}

			logger.DebugContext(ctx, "request received", attrs...)

			result, err := next(ctx, method, req)

			attrs = append(attrs, slog.Duration("duration", time.Since(start)))
			if err != nil {
				logger.WarnContext(ctx, "request failed", append(attrs, slog.Any("error", err))...)

				return result, err
			}

			logger.DebugContext(ctx, "request completed", attrs...)

			return result, nil
		}
	}
}
