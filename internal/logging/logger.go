package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at the given level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup builds a logger and installs it as the slog default
func Setup(w io.Writer, level slog.Level) *slog.Logger {
	logger := New(w, level)
	slog.SetDefault(logger)
	return logger
}

// Discard is a logger that drops everything, for use before config is loaded
// and in tests.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))
