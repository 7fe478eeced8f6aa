// Package cmd implements the CLI commands for droidcast.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/droidcast/droidcast/internal/version"
)

var (
	flagConfig string
	flagDebug  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "droidcast",
	Short: "Android debug bridge tools over MCP",
	Long: `Droidcast exposes Android device debugging operations (log snapshots,
process lookup, system properties) and VectorDrawable-to-SVG conversion
as MCP tools, backed by the adb command-line bridge.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}
