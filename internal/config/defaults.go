package config

const (
	defaultConfigPath   = "~/.config/lyricpro/config.toml"
	projectConfigName   = "lyricpro.toml"
	defaultLogDir       = "~/.local/share/lyricpro/logs"
	defaultHistoryDB    = "~/.local/share/lyricpro/history.db"
	defaultLockDir      = "~/.local/share/lyricpro/locks"
	defaultExtension    = ".pro"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	templateEnv         = "LYRICPRO_TEMPLATE"
	legacyTemplateEnv   = "TEMPLATE_PATH"
	defaultHistoryState = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
			LockDir:   defaultLockDir,
		},
		Output: Output{
			Extension: defaultExtension,
		},
		History: History{
			Enabled: defaultHistoryState,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
