package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ctxKey keeps request-scoped values from colliding with other packages.
type ctxKey string

const (
	keyRequestID ctxKey = "request_id"
	keyLogger    ctxKey = "logger"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID returns the request ID stored in echo.Context, minting a
// fresh one when the middleware has not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID carried by a standard
// context.Context, or "" when absent.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// WithRequestID returns a child context carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil when absent.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back when
// the request carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a child context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}
