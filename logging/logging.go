package logging

import (
	"io"
	"log/slog"
	"strings"
)

// SourceKey is the attribute key used for source locations in log records.
const SourceKey = "source"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
}

// Locator is implemented by anything that reports a human-readable location,
// such as a source.Source.
type Locator interface {
	Location() string
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := ParseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Location returns a log attribute carrying the location of loc.
// A nil Locator yields an empty location.
func Location(loc Locator) slog.Attr {
	if loc == nil {
		return slog.String(SourceKey, "")
	}

	return slog.String(SourceKey, loc.Location())
}
