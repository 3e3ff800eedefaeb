package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "dialogbridge"
	databaseName = "dialogbridge.sqlite"
)

// GetConfigDir returns $XDG_CONFIG_HOME/dialogbridge (default: ~/.config/dialogbridge).
func GetConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetDataDir returns $XDG_DATA_HOME/dialogbridge (default: ~/.local/share/dialogbridge).
func GetDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// GetDatabaseFile returns the default journal database path.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

func xdgDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	return filepath.Join(base, appName), nil
}
