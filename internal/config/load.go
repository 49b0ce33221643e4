package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDirName is the per-user config directory name.
const appDirName = "islands-3d"

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file, preferring one
// next to the binary over the per-user directory.
func findConfigFile() string {
	for _, path := range []string{"./config.yaml", filepath.Join(ConfigDir(), "config.yaml")} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(base, appDirName)
}

// loadFromFile merges a YAML file over cfg's current values, so a
// partial file keeps the defaults for everything it omits.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
