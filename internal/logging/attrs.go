package logging

import (
	"context"
	"log/slog"
	"time"

	"lyricpro/internal/failure"
)

// Attr is re-exported so callers need not import log/slog for attributes.
type Attr = slog.Attr

func String(key, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

// Error records err together with its failure kind.
func Error(err error) Attr {
	if err == nil {
		return slog.String(FieldError, "<nil>")
	}
	return slog.Group("",
		slog.Any(FieldError, err),
		slog.String(FieldErrorKind, failure.Kind(err)),
	)
}

// Counts records the size of a converted document inline.
func Counts(groups, slides, bytes int) Attr {
	return slog.Group("",
		slog.Int("groups", groups),
		slog.Int("slides", slides),
		slog.Int("bytes", bytes),
	)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger tags logger with a component name; a nil logger yields
// a no-op one.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// NoopHandler discards all records.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h NoopHandler) WithGroup(string) slog.Handler { return h }
