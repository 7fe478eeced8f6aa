package cmd

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodeError(t *testing.T) {
	t.Run("NewExitCodeError creates error with code", func(t *testing.T) {
		err := NewExitCodeError(42)
		if err.Code != 42 {
			t.Errorf("Code = %d, want 42", err.Code)
		}
	})

	t.Run("Error message includes code", func(t *testing.T) {
		err := NewExitCodeError(42)
		if err.Error() != "exit code 42" {
			t.Errorf("Error() = %q, want %q", err.Error(), "exit code 42")
		}
	})

	t.Run("errors.As matches ExitCodeError", func(t *testing.T) {
		var err error = NewExitCodeError(127)
		var exitErr *ExitCodeError
		if !errors.As(err, &exitErr) {
			t.Fatal("errors.As failed to match ExitCodeError")
		}
		if exitErr.Code != 127 {
			t.Errorf("Code = %d, want 127", exitErr.Code)
		}
	})

	t.Run("errors.As matches wrapped ExitCodeError", func(t *testing.T) {
		wrapped := fmt.Errorf("serve: %w", NewExitCodeError(3))
		var exitErr *ExitCodeError
		if !errors.As(wrapped, &exitErr) {
			t.Fatal("errors.As failed to match wrapped ExitCodeError")
		}
		if exitErr.Code != 3 {
			t.Errorf("Code = %d, want 3", exitErr.Code)
		}
	})
}
