package config

const (
	defaultLogLevel             = "info"
	defaultLogFormat            = "console"
	defaultDialogTimeoutSeconds = 0 // wait forever
	defaultJournalRetentionDays = 30
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Dialogs: DialogsConfig{
			TimeoutSeconds:       defaultDialogTimeoutSeconds,
			AutoAccept:           false,
			Journal:              true,
			JournalRetentionDays: defaultJournalRetentionDays,
		},
	}
}

// setDefaults registers defaults with viper so env vars and partial files merge over them.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("dialogs.timeout_seconds", defaults.Dialogs.TimeoutSeconds)
	m.viper.SetDefault("dialogs.auto_accept", defaults.Dialogs.AutoAccept)
	m.viper.SetDefault("dialogs.journal", defaults.Dialogs.Journal)
	m.viper.SetDefault("dialogs.journal_retention_days", defaults.Dialogs.JournalRetentionDays)

	m.viper.SetDefault("database.path", "")
}
