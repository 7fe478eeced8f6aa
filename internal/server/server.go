// Package server wires the MCP server and its tool handlers.
//
// This is the composition root: it creates the adb invoker and the
// conversion cache and injects them into the handlers. Handlers
// orchestrate; all device interaction happens in internal/adb and all
// conversion in internal/vd.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/droidcast/droidcast/internal/adb"
	"github.com/droidcast/droidcast/internal/config"
	"github.com/droidcast/droidcast/internal/vdcache"
	"github.com/droidcast/droidcast/internal/version"
)

// Server exposes droidcast's tools over MCP.
type Server struct {
	cfg   *config.Config
	inv   adb.Invoker
	cache *vdcache.Cache
	mcp   *mcp.Server
}

// New creates a Server from cfg, using the real adb binary.
func New(cfg *config.Config) *Server {
	return NewWithInvoker(cfg, adb.NewCLIInvoker(cfg.ADB.Path))
}

// NewWithInvoker creates a Server with an injected invoker. Tests use
// this to substitute a fake for the adb binary.
func NewWithInvoker(cfg *config.Config, inv adb.Invoker) *Server {
	s := &Server{
		cfg:   cfg,
		inv:   inv,
		cache: vdcache.New(),
	}

	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "droidcast",
		Version: version.Version,
	}, nil)
	s.register()

	return s
}

// register adds all tools to the MCP server.
func (s *Server) register() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "device_logcat",
		Description: `Fetch a snapshot of the device log (logcat).
At least one of package, pid, or tag must be given. A package name is
resolved to the PID of its running process before the log is read.`,
	}, s.handleDeviceLogcat)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "resolve_pid",
		Description: "Resolve the PID of a running application by package name.",
	}, s.handleResolvePID)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_devices",
		Description: "List devices known to the debug bridge (adb devices -l).",
	}, s.handleListDevices)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "device_properties",
		Description: "Read system properties from the device (getprop), optionally a single named property.",
	}, s.handleDeviceProperties)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name: "vector_to_svg",
		Description: `Convert Android VectorDrawable XML to SVG.
Results are memoized per input and option set; set no_cache to force
recomputation.`,
	}, s.handleVectorToSVG)
}

// Run serves MCP over stdio until the client disconnects or ctx is
// canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// textResult wraps text in a single-block tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// notify emits a best-effort log notification on the caller's session.
// It is fire-and-forget: any failure, including a panic inside the
// transport, is swallowed so it can never mask the primary result.
func notify(ctx context.Context, req *mcp.CallToolRequest, msg string) {
	defer func() { _ = recover() }()
	if req == nil || req.Session == nil {
		return
	}
	_ = req.Session.Log(ctx, &mcp.LoggingMessageParams{
		Logger: "droidcast",
		Level:  "info",
		Data:   msg,
	})
}
