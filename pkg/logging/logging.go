// Package logging configures the process-wide slog logger.
//
// Usage:
//
//	logging.Setup("info", "text")   // colored tint output on stderr
//	logging.Setup("debug", "json")  // JSON lines on stdout
//
// Level names: debug, info, warn, error (default: info).
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs the default logger with the given level name and format
// ("text" or "json").
func Setup(level, format string) {
	slog.SetDefault(New(os.Stderr, os.Stdout, ParseLevel(level), format))
}

// SetupWithLevel configures colored logging at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, os.Stdout, level, "text"))
}

// New builds a logger. Text output goes to textOut through tint; JSON output
// goes to jsonOut.
func New(textOut, jsonOut io.Writer, level slog.Level, format string) *slog.Logger {
	if format == "json" {
		return slog.New(slog.NewJSONHandler(jsonOut, &slog.HandlerOptions{
			Level: level,
		}))
	}
	return slog.New(
		tint.NewHandler(textOut, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
		}),
	)
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
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
