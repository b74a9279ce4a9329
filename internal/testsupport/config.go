package testsupport

import (
	"path/filepath"
	"testing"

	"lyricpro/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The template path is left empty unless WithTemplate is given.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.HistoryDB = filepath.Join(base, "history", "history.db")
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")
	cfgVal.Paths.Template = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithTemplate writes a synthetic template into the config's base directory
// and points paths.template at it.
func WithTemplate(topts ...TemplateOption) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.Template = WriteTemplate(b.t, b.baseDir, topts...)
	}
}

// WithOutputDir sets output.dir to a fresh directory under the base directory.
func WithOutputDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Dir = filepath.Join(b.baseDir, "out")
	}
}

// WithoutHistory disables the history database.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
