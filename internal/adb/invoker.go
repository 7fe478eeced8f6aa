// Package adb wraps invocations of the Android Debug Bridge CLI.
//
// All device interaction goes through the `adb` binary. Arguments are
// always passed as an exact vector, never through a shell, so values
// from tool requests cannot be reinterpreted by quoting or expansion.
package adb

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// MaxOutputBytes bounds how much stdout a single invocation may
// produce. An invocation exceeding it is terminated and fails.
const MaxOutputBytes = 5 << 20

// waitDelay bounds how long we wait for pipe I/O after the child's
// context is canceled, so a misbehaving child cannot stall Run forever.
const waitDelay = 5 * time.Second

// Invoker runs the adb binary with an argument vector and returns its
// trimmed stdout. Implementations must terminate the child process when
// the timeout expires. Tests substitute a fake.
type Invoker interface {
	Run(ctx context.Context, args []string, timeout time.Duration) (string, error)
}

// CommandError represents a failed adb invocation. Its message always
// names the binary and the full argument vector, then the underlying
// cause, then any captured stderr. Tool handlers surface this message
// verbatim, so the format is load-bearing.
type CommandError struct {
	Path   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s failed: %v", e.Path, strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += "\nstderr: " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CLIInvoker executes the adb binary at Path using os/exec.
type CLIInvoker struct {
	Path string
}

// NewCLIInvoker creates an invoker for the adb binary at path.
func NewCLIInvoker(path string) *CLIInvoker {
	return &CLIInvoker{Path: path}
}

// Run executes adb with args, waiting at most timeout. Stdout and
// stderr are captured separately; stdout is returned with trailing
// whitespace trimmed. An empty result is valid and distinct from
// failure. On non-zero exit, timeout, oversized output, or a binary
// that cannot be started, Run returns a *CommandError.
func (v *CLIInvoker) Run(ctx context.Context, args []string, timeout time.Duration) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// A second cancel lets the output cap kill the child mid-stream.
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	cmd := exec.CommandContext(ctx, v.Path, args...)
	cmd.WaitDelay = waitDelay

	stdout := &cappedBuffer{limit: MaxOutputBytes, abort: stop}
	var stderr strings.Builder
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		cause := err
		switch {
		case stdout.overflowed:
			cause = fmt.Errorf("output exceeded %d bytes", MaxOutputBytes)
		case ctx.Err() == context.DeadlineExceeded:
			cause = fmt.Errorf("timed out after %v", timeout)
		}
		return "", &CommandError{
			Path:   v.Path,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    cause,
		}
	}

	return strings.TrimRight(stdout.String(), " \t\r\n"), nil
}

// cappedBuffer accumulates writes up to limit bytes. On overflow it
// aborts the invocation so the child cannot exhaust memory.
type cappedBuffer struct {
	buf        strings.Builder
	limit      int
	overflowed bool
	abort      func()
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.buf.Len()+len(p) > b.limit {
		b.overflowed = true
		if b.abort != nil {
			b.abort()
		}
		return 0, fmt.Errorf("output limit of %d bytes exceeded", b.limit)
	}
	return b.buf.Write(p)
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
