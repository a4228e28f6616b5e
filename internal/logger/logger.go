// Package logger configures the application's logging.
//
// It uses zerolog for structured logging and provides the specialized
// loggers used by the pgx query tracer in local development.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/stafflane/employee-api/internal/config"
)

// New builds the application's main structured logger.
//
// In the "local" environment it writes human-friendly console output at
// debug level; everywhere else it emits JSON at info level, suitable for
// log shippers.
func New(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if cfg.Primary.Env == "local" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "employee-api").
		Str("env", cfg.Primary.Env).
		Logger()
}

// NewPgxLogger builds the logger handed to the pgx tracelog adapter.
//
// SQL tracing is noisy, so it gets its own console logger tagged with a
// component field instead of reusing the main application logger.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel converts a zerolog level into the integer log level
// expected by pgx's tracelog package (tracelog.LogLevel).
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return 6 // tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return 5 // tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return 4 // tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return 3 // tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return 2 // tracelog.LogLevelError
	default:
		return 1 // tracelog.LogLevelNone
	}
}
