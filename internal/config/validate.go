package config

import "fmt"

// validLogLevels defines the allowed log level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that a parsed Config contains valid values:
//   - adb.path is non-empty
//   - timeouts fall within [MinTimeoutMS, MaxTimeoutMS]
//   - adb.default_timeout_ms does not exceed adb.max_timeout_ms
//   - log.level is one of: debug, info, warn, error
//
// Validate expects defaults to have been applied already.
func Validate(cfg *Config) error {
	if cfg.ADB.Path == "" {
		return fmt.Errorf("adb.path: must not be empty")
	}
	if cfg.ADB.DefaultTimeoutMS < MinTimeoutMS || cfg.ADB.DefaultTimeoutMS > MaxTimeoutMS {
		return fmt.Errorf("adb.default_timeout_ms: must be between %d and %d, got %d",
			MinTimeoutMS, MaxTimeoutMS, cfg.ADB.DefaultTimeoutMS)
	}
	if cfg.ADB.MaxTimeoutMS < MinTimeoutMS || cfg.ADB.MaxTimeoutMS > MaxTimeoutMS {
		return fmt.Errorf("adb.max_timeout_ms: must be between %d and %d, got %d",
			MinTimeoutMS, MaxTimeoutMS, cfg.ADB.MaxTimeoutMS)
	}
	if cfg.ADB.DefaultTimeoutMS > cfg.ADB.MaxTimeoutMS {
		return fmt.Errorf("adb.default_timeout_ms: must not exceed adb.max_timeout_ms (%d > %d)",
			cfg.ADB.DefaultTimeoutMS, cfg.ADB.MaxTimeoutMS)
	}
	if !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level: must be one of debug, info, warn, error; got %q", cfg.Log.Level)
	}
	return nil
}
