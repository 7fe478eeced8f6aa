package cmd

import "fmt"

// ExitCodeError carries a process exit code through the error chain so
// main can exit with it.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError creates an error that requests exit with code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
