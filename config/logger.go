package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a slog.Logger writing to stdout, configured from GO_ENV and LOG_LEVEL.
func NewLogger() *slog.Logger {
	return NewLoggerTo(os.Stdout, getEnv("GO_ENV", "development"), os.Getenv("LOG_LEVEL"))
}

// NewLoggerTo builds a logger for the given environment and level name.
// Production uses the JSON handler; otherwise the text handler.
// Level may be: debug, info, warn, error (default: info).
func NewLoggerTo(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
