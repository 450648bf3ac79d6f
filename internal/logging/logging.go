// Package logging configures the process-wide slog logger. Diagnostics go to
// stderr so that report output on stdout stays clean.
//
// The level comes from LOG_LEVEL (debug, info, warn, error; default info).
// LOG_FORMAT=json switches from the text handler to JSON.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	levelEnv  = "LOG_LEVEL"
	formatEnv = "LOG_FORMAT"
)

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger returns a logger tagged with module and version.
// Debug level also records the source location.
func NewStructuredLogger(w io.Writer, module, version, level string, json bool) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("module", module, "version", version)
}

// SetDefaultStructuredLogger installs a stderr logger configured from the
// environment as the slog default.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(levelEnv))
}

// SetDefaultStructuredLoggerWithLevel is SetDefaultStructuredLogger with an
// explicit level, used by the --debug flag.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	json := strings.EqualFold(os.Getenv(formatEnv), "json")
	slog.SetDefault(NewStructuredLogger(os.Stderr, module, version, level, json))
}
