package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog logger tagged with service. A nil w writes to stdout.
func New(w io.Writer, service string) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(h).With("service", service)
}

// Discard is for tests and optional collaborators.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
