// Package logging constructs the leveled slog.Logger used across
// cortexview. The fullscreen terminal owns stdout, so operational
// output goes to a file or is discarded.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New creates a leveled slog.Logger writing to w
func New(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Open resolves the logger destination from config: an empty path
// discards output. The returned closer is always non-nil.
func Open(level, path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return New(level, io.Discard), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return New(level, f), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
