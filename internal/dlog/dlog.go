// Package dlog provides structured operational logging for droidcast.
//
// The MCP transport owns stdout, so operational logs must never touch it.
// Logs go to stderr (pretty-printed when stderr is a terminal, JSON
// otherwise) and optionally to a log file.
package dlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// std is the global logger used by the package-level functions.
var std = newDefault()

func newDefault() zerolog.Logger {
	return zerolog.New(stderrWriter()).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// stderrWriter returns a console writer when stderr is a terminal,
// and a plain JSON writer otherwise.
func stderrWriter() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return os.Stderr
}

// Configure sets up the global logger.
// If logPath is empty, file logging is disabled.
// If debug is true, debug-level messages are logged.
func Configure(logPath string, debug bool) error {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	w := stderrWriter()
	if logPath != "" {
		f, err := OpenLogFile(logPath)
		if err != nil {
			return err
		}
		w = zerolog.MultiLevelWriter(w, f)
	}

	std = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

// SetOutput redirects the global logger to w. Intended for tests.
func SetOutput(w io.Writer) {
	std = std.Output(w)
}

// SetLevel sets the minimum level for the global logger.
func SetLevel(level zerolog.Level) {
	std = std.Level(level)
}

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) {
	std.Debug().Msgf(format, args...)
}

// Info logs an informational message using the global logger.
func Info(format string, args ...any) {
	std.Info().Msgf(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	std.Warn().Msgf(format, args...)
}

// Error logs an error message using the global logger.
func Error(format string, args ...any) {
	std.Error().Msgf(format, args...)
}

// OpenLogFile opens a log file for appending, creating parent
// directories if needed.
func OpenLogFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
