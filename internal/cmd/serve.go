package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/droidcast/droidcast/internal/config"
	"github.com/droidcast/droidcast/internal/dlog"
	"github.com/droidcast/droidcast/internal/server"
	"github.com/droidcast/droidcast/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP tools over stdio",
	Long: `Serve droidcast's tools to an MCP client over stdio.

The server runs until the client disconnects or the process receives
SIGINT or SIGTERM. Operational logs go to stderr and the optional log
file; stdout belongs to the MCP transport.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	debug := flagDebug || cfg.Log.Level == "debug"
	if err := dlog.Configure(cfg.Log.File, debug); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dlog.Info("droidcast %s serving MCP on stdio (adb=%s)", version.Version, cfg.ADB.Path)

	srv := server.New(cfg)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		dlog.Error("server stopped: %v", err)
		return NewExitCodeError(1)
	}

	dlog.Info("droidcast stopped")
	return nil
}
