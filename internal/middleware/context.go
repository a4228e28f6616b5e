package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/stafflane/employee-api/internal/server"
)

// LoggerKey is the key under which the request-scoped logger is stored,
// both in the echo context and in the request's context.Context.
const LoggerKey = "logger"

// loggerCtxKey is the typed key used for context.WithValue to avoid
// collisions with other packages.
type loggerCtxKey struct{}

// ContextEnhancer enriches each request with a request-scoped logger that
// carries correlation fields (request_id, method, path, ip).
//
// The logger is stored in the echo context for handlers and in the Go
// request context for code further down that only sees context.Context.
type ContextEnhancer struct {
	server *server.Server
}

// NewContextEnhancer creates a ContextEnhancer using the app container.
func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext returns an echo middleware that, for every request:
//  1. reads the request ID set by the RequestID middleware
//  2. builds a child logger with the request fields
//  3. stores the logger in the echo context and the Go request context
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := GetRequestID(c)

			contextLogger := ce.server.Logger.With().
				Str("request_id", requestID).
				Str("method", c.Request().Method).
				Str("path", c.Path()). // route template, not raw URL
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(WithLogger(c.Request().Context(), &contextLogger)))

			return next(c)
		}
	}
}

// GetLogger retrieves the request-scoped logger from the echo context.
//
// If the ContextEnhancer middleware did not run, it returns a no-op logger
// so callers never crash on a nil logger.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}

// WithLogger returns a context carrying the given logger, retrievable with
// LoggerFromContext.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// LoggerFromContext retrieves the request-scoped logger from a plain
// context.Context, for code below the HTTP layer.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return logger
	}

	logger := zerolog.Nop()
	return &logger
}
