package app

import (
	"io"
	"log/slog"
)

// newLogger creates the logger for one run. Every record carries the run ID
// so concurrent or repeated runs can be told apart in shared log sinks. It
// does not set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr, runID string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler).With("run_id", runID)
}
