package logger

import (
	"log/slog"
	"os"
)

// New returns the process logger: structured JSON on stdout with the
// service name attached to every record.
func New(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", "otsus")
}
