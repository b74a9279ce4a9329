package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"lyricpro/internal/config"
	"lyricpro/internal/convert"
	"lyricpro/internal/history"
	"lyricpro/internal/logging"
)

// commandContext loads the configuration at most once per invocation and
// hands out what the conversion commands share.
type commandContext struct {
	configFlag *string
	verbose    *bool

	once       sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{configFlag: configFlag, verbose: verbose}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.once.Do(func() {
		path := ""
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err == nil {
			err = cfg.EnsureDirectories()
		}
		if err != nil {
			c.configErr = err
			return
		}
		if c.verbose != nil && *c.verbose {
			cfg.Logging.Level = "debug"
		}
		c.config, c.configPath, c.configSeen = cfg, resolved, exists
	})
	return c.config, c.configErr
}

// logger writes to w (stderr) and the configured log file.
func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, w)
}

// conversionOptions builds the options every conversion command passes to
// convert: logging to w, output naming and the lock directory from the
// config, and the history recorder when history is enabled. Call done once the conversions finish.
func (c *commandContext) conversionOptions(w io.Writer, nameFromTitle bool) (opts []convert.Option, done func(), err error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.logger(w)
	if err != nil {
		return nil, nil, err
	}
	naming := *cfg
	naming.Output.NameFromTitle = nameFromTitle
	opts = []convert.Option{
		convert.WithLogger(logger),
		convert.WithOutputNamer(naming.OutputPath),
		convert.WithLockDir(cfg.Paths.LockDir),
	}
	done = func() {}
	if store := c.openHistory(logger); store != nil {
		opts = append(opts, convert.WithRecorder(store))
		done = func() { _ = store.Close() }
	}
	return opts, done, nil
}

// openHistory opens the history store when history is enabled. A store that
// cannot be opened is logged and skipped; conversions never fail over it.
func (c *commandContext) openHistory(logger *slog.Logger) *history.Store {
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(cfg.Paths.HistoryDB)
	if err != nil {
		logger.Warn("history unavailable",
			logging.String("path", cfg.Paths.HistoryDB),
			logging.Error(err),
		)
		return nil
	}
	return store
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
