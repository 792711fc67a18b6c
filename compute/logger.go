package compute

import (
	"fmt"
	"log/slog"
)

// Logger is an optional interface for observability during dispatch.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
// - Ownership: format/args are read-only.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// SlogLogger adapts a *slog.Logger to Logger, logging at debug level.
type SlogLogger struct {
	Logger *slog.Logger
}

// Logf formats the message and logs it at debug level.
func (l SlogLogger) Logf(format string, args ...any) {
	lg := l.Logger
	if lg == nil {
		lg = slog.Default()
	}
	lg.Debug(fmt.Sprintf(format, args...))
}
