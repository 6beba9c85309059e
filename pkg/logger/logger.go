package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// EnvVarLogFormat is the environment variable name for selecting the
	// handler: "json" (default) or "text".
	EnvVarLogFormat = "LOG_FORMAT"
)

// New creates a structured logger writing to w.
// The module name and version are attached to every record.
// Source locations are added at debug level only.
// Parameters:
//   - module: The name of the application using the logger.
//   - version: The version of the application (e.g., "v1.0.0").
//   - level: The log level (e.g., "debug", "info", "warn", "error").
//   - format: "text" for human readable output, anything else for JSON.
func New(w io.Writer, module, version, level, format string) *slog.Logger {
	lev := ParseLogLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return slog.New(h).With("module", module, "version", version)
}

// SetDefaultLogger sets a stderr logger as the slog default, taking level
// and format from LOG_LEVEL and LOG_FORMAT.
func SetDefaultLogger(module, version string) {
	SetDefaultLoggerWithLevel(module, version, os.Getenv(EnvVarLogLevel))
}

// SetDefaultLoggerWithLevel is SetDefaultLogger with an explicit level.
func SetDefaultLoggerWithLevel(module, version, level string) {
	slog.SetDefault(New(os.Stderr, module, version, level, os.Getenv(EnvVarLogFormat)))
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Unrecognized strings map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
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
