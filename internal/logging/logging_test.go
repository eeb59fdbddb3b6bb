package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	t.Parallel()

	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for input, want := range cases {
		if got := levelFromString(input); got != want {
			t.Fatalf("levelFromString(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewWithWriterFiltersLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("visible", "component", "test")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %s", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "component=test") {
		t.Fatalf("unexpected output: %s", out)
	}
}
