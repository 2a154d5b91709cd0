// Package logger builds the structured loggers used inside the module.
// Output is JSON via log/slog with the component name embedded. Being a
// library we never install a process-global default; callers who want one
// can slog.SetDefault the returned logger themselves.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger for the given component writing to stderr.
func New(component string, level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, component, level)
}

// NewWithWriter creates a JSON logger for the given component writing to w.
func NewWithWriter(w io.Writer, component string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With(
		slog.String("component", component),
	)
}
