// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ParseLevel maps a raw level name to slog.Level. Unknown names fall back to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger is a JSON logger that writes to stdout and, when a path is set, to a
// log file as well.
type Logger struct {
	*slog.Logger
	Level   *slog.LevelVar
	Session string
	file    *os.File
}

// New builds a Logger. Every record carries the session id of the run.
func New(level, path string) (*Logger, error) {
	return NewWithWriter(os.Stdout, level, path)
}

// NewWithWriter is New with a custom console writer.
func NewWithWriter(console io.Writer, level, path string) (*Logger, error) {
	l := &Logger{
		Level:   &slog.LevelVar{},
		Session: uuid.NewString(),
	}
	l.Level.Set(ParseLevel(level))

	out := console
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = file
		out = io.MultiWriter(console, file)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: l.Level,
	})
	l.Logger = slog.New(handler).With(slog.String("session", l.Session))
	return l, nil
}

// Close closes the log file, if one is open.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
