package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/droidcast/droidcast/internal/adb"
	"github.com/droidcast/droidcast/internal/config"
	"github.com/droidcast/droidcast/internal/dlog"
)

// Line-count bounds for device_logcat.
const (
	defaultMaxLines = 100
	maxMaxLines     = 1000
)

// Placeholder payloads returned instead of empty text.
const (
	noLogEntriesMsg = "no log entries found"
	noDevicesMsg    = "no devices connected"
	noPropertiesMsg = "no properties returned"
)

// timeout resolves a requested timeout_ms against the configured
// default and bounds.
func (s *Server) timeout(ms int) (time.Duration, error) {
	if ms == 0 {
		ms = s.cfg.ADB.DefaultTimeoutMS
	}
	if ms < config.MinTimeoutMS || ms > s.cfg.ADB.MaxTimeoutMS {
		return 0, fmt.Errorf("timeout_ms must be between %d and %d, got %d",
			config.MinTimeoutMS, s.cfg.ADB.MaxTimeoutMS, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// LogcatInput is the request for the device_logcat tool.
type LogcatInput struct {
	Package   string `json:"package,omitempty" jsonschema:"application package name whose process scopes the log"`
	PID       string `json:"pid,omitempty" jsonschema:"explicit process ID to scope the log"`
	Tag       string `json:"tag,omitempty" jsonschema:"log tag to scope the log"`
	Priority  string `json:"priority,omitempty" jsonschema:"minimum priority for the tag: V D I W E F or S (default V)"`
	MaxLines  int    `json:"max_lines,omitempty" jsonschema:"number of recent lines to return (1-1000, default 100)"`
	TimeoutMS int    `json:"timeout_ms,omitempty" jsonschema:"invocation timeout in milliseconds (1000-15000)"`
}

func (s *Server) handleDeviceLogcat(ctx context.Context, req *mcp.CallToolRequest, in LogcatInput) (*mcp.CallToolResult, any, error) {
	if in.Package == "" && in.PID == "" && in.Tag == "" {
		return nil, nil, fmt.Errorf("at least one of package, pid, or tag is required")
	}
	if in.MaxLines == 0 {
		in.MaxLines = defaultMaxLines
	}
	if in.MaxLines < 1 || in.MaxLines > maxMaxLines {
		return nil, nil, fmt.Errorf("max_lines must be between 1 and %d, got %d", maxMaxLines, in.MaxLines)
	}
	prio, err := adb.ParsePriority(in.Priority)
	if err != nil {
		return nil, nil, err
	}
	timeout, err := s.timeout(in.TimeoutMS)
	if err != nil {
		return nil, nil, err
	}

	pid := in.PID
	if pid == "" && in.Package != "" {
		pid, err = adb.ResolvePID(ctx, s.inv, in.Package, timeout)
		if err != nil {
			return nil, nil, err
		}
	}

	args := append([]string{"shell"}, adb.LogcatArgs(adb.LogcatParams{
		PID:      pid,
		Tag:      in.Tag,
		Priority: prio,
		MaxLines: in.MaxLines,
	})...)

	out, err := s.inv.Run(ctx, args, timeout)
	if err != nil {
		return nil, nil, err
	}

	dlog.Debug("device_logcat: %d bytes (pid=%q tag=%q)", len(out), pid, in.Tag)
	notify(ctx, req, fmt.Sprintf("read %d bytes of device log", len(out)))

	if out == "" {
		return textResult(noLogEntriesMsg), nil, nil
	}
	return textResult(out), nil, nil
}

// ResolvePIDInput is the request for the resolve_pid tool.
type ResolvePIDInput struct {
	Package   string `json:"package" jsonschema:"application package name to look up"`
	TimeoutMS int    `json:"timeout_ms,omitempty" jsonschema:"invocation timeout in milliseconds (1000-15000)"`
}

func (s *Server) handleResolvePID(ctx context.Context, req *mcp.CallToolRequest, in ResolvePIDInput) (*mcp.CallToolResult, any, error) {
	if in.Package == "" {
		return nil, nil, fmt.Errorf("package is required")
	}
	timeout, err := s.timeout(in.TimeoutMS)
	if err != nil {
		return nil, nil, err
	}

	pid, err := adb.ResolvePID(ctx, s.inv, in.Package, timeout)
	if err != nil {
		return nil, nil, err
	}

	notify(ctx, req, fmt.Sprintf("resolved %s to pid %s", in.Package, pid))
	return textResult(pid), nil, nil
}

// ListDevicesInput is the request for the list_devices tool.
type ListDevicesInput struct {
	TimeoutMS int `json:"timeout_ms,omitempty" jsonschema:"invocation timeout in milliseconds (1000-15000)"`
}

func (s *Server) handleListDevices(ctx context.Context, req *mcp.CallToolRequest, in ListDevicesInput) (*mcp.CallToolResult, any, error) {
	timeout, err := s.timeout(in.TimeoutMS)
	if err != nil {
		return nil, nil, err
	}

	out, err := s.inv.Run(ctx, []string{"devices", "-l"}, timeout)
	if err != nil {
		return nil, nil, err
	}

	// `adb devices` always prints a header line; a lone header means
	// no devices are attached.
	if onlyHeader(out) {
		return textResult(noDevicesMsg), nil, nil
	}
	return textResult(out), nil, nil
}

// onlyHeader reports whether adb devices output contains no device
// lines beyond the "List of devices attached" header.
func onlyHeader(out string) bool {
	lines := 0
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}
	if lines == 0 {
		return true
	}
	return lines == 1 && strings.HasPrefix(out, "List of devices")
}

// PropertiesInput is the request for the device_properties tool.
type PropertiesInput struct {
	Name      string `json:"name,omitempty" jsonschema:"single property name to read; empty reads all properties"`
	TimeoutMS int    `json:"timeout_ms,omitempty" jsonschema:"invocation timeout in milliseconds (1000-15000)"`
}

func (s *Server) handleDeviceProperties(ctx context.Context, req *mcp.CallToolRequest, in PropertiesInput) (*mcp.CallToolResult, any, error) {
	timeout, err := s.timeout(in.TimeoutMS)
	if err != nil {
		return nil, nil, err
	}

	args := []string{"shell", "getprop"}
	if in.Name != "" {
		args = append(args, in.Name)
	}

	out, err := s.inv.Run(ctx, args, timeout)
	if err != nil {
		return nil, nil, err
	}
	if out == "" {
		return textResult(noPropertiesMsg), nil, nil
	}
	return textResult(out), nil, nil
}
