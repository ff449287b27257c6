package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"

	"github.com/Paintersrp/cheats/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// EnsureConfigExists creates an empty config file (and its directory) when
// none is present. An empty file loads as Default.
func EnsureConfigExists(configPath string) error {
	if configPath == "" {
		return &ConfigInitError{msg: "config path is empty"}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		file, err := os.Create(configPath)
		if err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
		file.Close()
	} else if err != nil {
		return fmt.Errorf("failed to check config file existence: %w", err)
	}

	return nil
}

// ResolveDataDir returns the directory backing the local key-value store.
// An empty configured value falls back to $XDG_DATA_HOME/cheats.
func (cfg *Config) ResolveDataDir() (string, error) {
	dir := cfg.DataDir
	if dir == "" {
		return filepath.Join(xdg.DataHome, constants.AppName), nil
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand data dir %q: %w", dir, err)
	}

	return filepath.Clean(expanded), nil
}
