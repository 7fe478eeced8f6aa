package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the default config file location,
// ~/.config/droidcast/config.yaml. Returns empty string if the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "droidcast", "config.yaml")
}

// Load loads the configuration from path. An empty path means
// DefaultPath(). If the file doesn't exist, Load returns Default().
// If the file exists but cannot be read, parsed, or validated, it
// returns an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
