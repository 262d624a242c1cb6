// Package logger builds the zerolog loggers shared by the server and the pgx tracer.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New returns the application logger. Local environments get the console writer,
// everything else writes JSON lines to stdout.
func New(level, env string) zerolog.Logger {
	return NewWithWriter(level, env, os.Stdout)
}

func NewWithWriter(level, env string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if env == "local" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "trivia-api").
		Str("env", env).
		Logger()
}

// NewPgxLogger returns a logger for SQL tracing.
func NewPgxLogger(base zerolog.Logger) zerolog.Logger {
	return base.With().Str("component", "pgx").Logger()
}

// PgxTraceLevel maps a zerolog level to the matching pgx tracelog level.
func PgxTraceLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
