package mcpserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// requestLogger tags every request the server receives with a time-ordered
// ID and logs its method and duration through slog.Default. Failed requests
// are logged at warn level, the rest at debug.
func requestLogger(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		id := newRequestID()
		start := time.Now()
		result, err := next(ctx, method, req)
		attrs := []any{"request_id", id, "method", method, "duration", time.Since(start)}
		if err != nil {
			slog.Warn("request failed", append(attrs, "error", err)...) //nolint:gosec // G706: values are structured log fields, not format strings
			return result, err
		}
		slog.Debug("request handled", attrs...)
		return result, nil
	}
}

func newRequestID() string {
	return uuid.Must(uuid.NewV7()).String()
}
