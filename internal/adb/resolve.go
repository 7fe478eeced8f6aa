package adb

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ProcessNotFoundError indicates a PID lookup succeeded but produced no
// process for the queried package. This is a semantic emptiness check
// on otherwise-successful output, distinct from a CommandError.
type ProcessNotFoundError struct {
	Package string
}

func (e *ProcessNotFoundError) Error() string {
	return fmt.Sprintf("no running process found for package %q", e.Package)
}

// ResolvePID maps an application package name to the PID of its running
// process by querying `pidof -s` on the device. The first
// whitespace-delimited token of the output is the PID. Invoker failures
// propagate unchanged; empty output yields a *ProcessNotFoundError.
func ResolvePID(ctx context.Context, inv Invoker, pkg string, timeout time.Duration) (string, error) {
	out, err := inv.Run(ctx, []string{"shell", "pidof", "-s", pkg}, timeout)
	if err != nil {
		return "", err
	}

	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", &ProcessNotFoundError{Package: pkg}
	}
	return fields[0], nil
}
