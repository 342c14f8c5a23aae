// Package observability holds the logging and metrics plumbing shared by
// every module.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NoOpLogger discards everything; used by tests.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewLogger builds the process logger. Level is one of debug, info, warn,
// error (case-insensitive); anything else means info.
func NewLogger(level, environment string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With(slog.String("env", environment))
}
