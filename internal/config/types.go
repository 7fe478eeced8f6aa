// Package config provides configuration types for droidcast settings.
// These types map to the YAML configuration file.
package config

// Config represents the top-level configuration for droidcast.
// It is typically stored at ~/.config/droidcast/config.yaml.
type Config struct {
	ADB ADBConfig `yaml:"adb,omitempty"`
	Log LogConfig `yaml:"log,omitempty"`
}

// ADBConfig contains settings for invoking the adb binary.
type ADBConfig struct {
	// Path is the adb binary to invoke. Defaults to "adb" (resolved
	// via PATH).
	Path string `yaml:"path,omitempty"`

	// DefaultTimeoutMS is the timeout applied when a tool call does
	// not specify one, in milliseconds.
	DefaultTimeoutMS int `yaml:"default_timeout_ms,omitempty"`

	// MaxTimeoutMS is the largest timeout a tool call may request,
	// in milliseconds.
	MaxTimeoutMS int `yaml:"max_timeout_ms,omitempty"`
}

// LogConfig contains operational logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `yaml:"level,omitempty"`

	// File is an optional path for file logging. Empty disables it.
	File string `yaml:"file,omitempty"`
}
