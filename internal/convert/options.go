package convert

import (
	"context"
	"log/slog"

	"lyricpro/internal/history"
	"lyricpro/internal/ident"
)

// Recorder receives one entry per run, successful or not.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) (history.Entry, error)
}

// OutputHistory is implemented by recorders that know which input last wrote
// an output path. Run warns before replacing a document that came from a
// different input.
type OutputHistory interface {
	LastForOutput(ctx context.Context, path string) (*history.Entry, error)
}

// OutputNamer derives the output path from the input path and song title.
type OutputNamer func(input, title string) string

// Option customizes a Run.
type Option func(*runner)

// WithLogger routes stage logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRecorder records every run in rec.
func WithRecorder(rec Recorder) Option {
	return func(r *runner) {
		r.recorder = rec
	}
}

// WithIdentSource replaces the random UUID source, e.g. with ident.Seeded
// for reproducible documents.
func WithIdentSource(src ident.Source) Option {
	return func(r *runner) {
		if src != nil {
			r.source = src
		}
	}
}

// WithOutputNamer overrides DefaultOutputPath for requests without an
// explicit output path.
func WithOutputNamer(namer OutputNamer) Option {
	return func(r *runner) {
		if namer != nil {
			r.namer = namer
		}
	}
}

// WithOutputClaims makes runs sharing c refuse an output path another run
// already claimed.
func WithOutputClaims(c *OutputClaims) Option {
	return func(r *runner) {
		r.claims = c
	}
}

// WithLockDir keeps output lock files in dir. The default is
// fileutil.DefaultLockDir.
func WithLockDir(dir string) Option {
	return func(r *runner) {
		r.lockDir = dir
	}
}

// WithTemplateCache reads templates through c instead of from disk on every
// run.
func WithTemplateCache(c *TemplateCache) Option {
	return func(r *runner) {
		r.cache = c
	}
}
