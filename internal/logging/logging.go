package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a console slog.Logger writing to stderr, keeping stdout for reports.
func New(level string) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter builds a text slog.Logger on an arbitrary writer.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelFromString(level),
	})
	return slog.New(handler)
}

func levelFromString(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
