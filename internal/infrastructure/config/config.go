// Package config loads and watches the dialog bridge configuration.
package config

import "time"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging"`
	Dialogs  DialogsConfig  `mapstructure:"dialogs" json:"dialogs"`
	Database DatabaseConfig `mapstructure:"database" json:"database"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// DialogsConfig controls how the bridge waits on dialogs.
type DialogsConfig struct {
	// TimeoutSeconds dismisses an unanswered dialog after this many seconds. 0 waits forever.
	TimeoutSeconds int `mapstructure:"timeout_seconds" json:"timeout_seconds" jsonschema:"minimum=0,default=0"`
	// AutoAccept starts the bridge in auto-accept mode; dialogs never block.
	AutoAccept bool `mapstructure:"auto_accept" json:"auto_accept"`
	// Journal records every released dialog in the database.
	Journal bool `mapstructure:"journal" json:"journal" jsonschema:"default=true"`
	// JournalRetentionDays prunes older journal entries at startup. 0 keeps everything.
	JournalRetentionDays int `mapstructure:"journal_retention_days" json:"journal_retention_days" jsonschema:"minimum=0"`
}

// Timeout returns the bounded wait as a duration.
func (d DialogsConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// JournalRetention returns the journal retention as a duration.
func (d DialogsConfig) JournalRetention() time.Duration {
	return time.Duration(d.JournalRetentionDays) * 24 * time.Hour
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" json:"path"`
}
