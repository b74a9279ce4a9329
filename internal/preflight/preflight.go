package preflight

import (
	"context"
	"path/filepath"

	"lyricpro/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckTemplate(cfg.Paths.Template))

	if cfg.Paths.LogDir != "" {
		results = append(results, CheckWritableParent("Log directory", filepath.Join(cfg.Paths.LogDir, "lyricpro.log")))
	}

	if cfg.Paths.LockDir != "" {
		results = append(results, CheckWritableParent("Lock directory", filepath.Join(cfg.Paths.LockDir, "check.lock")))
	}

	if cfg.Output.Dir != "" {
		results = append(results, CheckDirectoryAccess("Output directory", cfg.Output.Dir))
	}

	if cfg.History.Enabled {
		results = append(results, CheckHistory(ctx, cfg.Paths.HistoryDB))
	}

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
