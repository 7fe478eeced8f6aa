package config

// Timeout bounds for adb invocations, in milliseconds. The schema on
// every tool enforces the same range, so a valid config can never
// permit a timeout a tool could not request.
const (
	MinTimeoutMS     = 1000
	MaxTimeoutMS     = 15000
	DefaultTimeoutMS = 5000
)

// Default returns the default configuration used when no config file
// exists or a field is left unset.
func Default() *Config {
	return &Config{
		ADB: ADBConfig{
			Path:             "adb",
			DefaultTimeoutMS: DefaultTimeoutMS,
			MaxTimeoutMS:     MaxTimeoutMS,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// applyDefaults fills unset fields of cfg from Default().
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.ADB.Path == "" {
		cfg.ADB.Path = def.ADB.Path
	}
	if cfg.ADB.DefaultTimeoutMS == 0 {
		cfg.ADB.DefaultTimeoutMS = def.ADB.DefaultTimeoutMS
	}
	if cfg.ADB.MaxTimeoutMS == 0 {
		cfg.ADB.MaxTimeoutMS = def.ADB.MaxTimeoutMS
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}
