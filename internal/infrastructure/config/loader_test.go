package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, 0, mgr.viper.GetInt("dialogs.timeout_seconds"))
	assert.True(t, mgr.viper.GetBool("dialogs.journal"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARNING "
	cfg.Logging.Format = ""

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))

	cfg := DefaultConfig()
	cfg.Dialogs.TimeoutSeconds = -1
	cfg.Logging.Format = "xml"
	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialogs.timeout_seconds")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Dialogs.Journal)
	assert.Equal(t, filepath.Join(dir, "data", appName, databaseName), cfg.Database.Path)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `
[logging]
level = "debug"

[dialogs]
timeout_seconds = 15
auto_accept = true

[database]
path = "/tmp/journal.sqlite"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
	t.Setenv("DIALOGBRIDGE_LOG_FORMAT", "json")

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 15*time.Second, cfg.Dialogs.Timeout())
	assert.True(t, cfg.Dialogs.AutoAccept)
	assert.Equal(t, "/tmp/journal.sqlite", cfg.Database.Path)
}

func TestManager_LoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	content := "[dialogs]\ntimeout_seconds = -5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestManager_ReloadNotifiesCallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dialogs]\ntimeout_seconds = 1\n"), filePerm))

	mgr, err := NewManager(WithConfigDir(dir))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	require.NoError(t, os.WriteFile(path, []byte("[dialogs]\ntimeout_seconds = 9\n"), filePerm))
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, 9*time.Second, got.Dialogs.Timeout())
	assert.Equal(t, 9, mgr.Get().Dialogs.TimeoutSeconds)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout_seconds")
	assert.Contains(t, string(data), "Dialog Bridge Configuration")
}
