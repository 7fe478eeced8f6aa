package config

import (
	"strings"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	data := []byte(`
adb:
  path: /opt/android/platform-tools/adb
  default_timeout_ms: 3000
  max_timeout_ms: 10000
log:
  level: debug
  file: /tmp/droidcast.log
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.ADB.Path != "/opt/android/platform-tools/adb" {
		t.Errorf("ADB.Path = %q", cfg.ADB.Path)
	}
	if cfg.ADB.DefaultTimeoutMS != 3000 {
		t.Errorf("ADB.DefaultTimeoutMS = %d, want 3000", cfg.ADB.DefaultTimeoutMS)
	}
	if cfg.ADB.MaxTimeoutMS != 10000 {
		t.Errorf("ADB.MaxTimeoutMS = %d, want 10000", cfg.ADB.MaxTimeoutMS)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.File != "/tmp/droidcast.log" {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.ADB.Path != "" || cfg.Log.Level != "" {
		t.Errorf("empty input should produce zero-value config, got %+v", cfg)
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte("adb:\n  pathh: adb\n"))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("error = %v, want parse config wrapping", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("adb: [")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestParse_TypeMismatch(t *testing.T) {
	if _, err := Parse([]byte("adb:\n  default_timeout_ms: soon\n")); err == nil {
		t.Fatal("expected error for type mismatch")
	}
}
