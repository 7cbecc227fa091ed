// Package cmd implements the tailwindsort command-line host: a reference
// driver for the formatter core, in the spirit of the teacher module's own
// -input/-output/-check/-w flags, restructured onto a cobra command tree.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/awsqed/config-formatter/internal/plugin"
)

// Build-time version info, injected via ldflags:
//
//	go build -ldflags "-X github.com/awsqed/config-formatter/cmd.version=... -X github.com/awsqed/config-formatter/cmd.commit=..."
var (
	version = "dev"
	commit  = "unknown"
)

var configPath string

var log = logrus.StandardLogger()

var rootCmd = &cobra.Command{
	Use:   "tailwindsort",
	Short: "tailwindsort: a TailwindCSS utility-class sorter",
	Long: `tailwindsort locates utility-class lists in class-bearing attributes and
utility-function calls across HTML, JSX, TSX, Vue, Svelte, and Astro
source files, and rewrites each run into canonical order.`,
}

func init() {
	// Keep "tailwindsort version" and "tailwindsort info" reporting the same
	// build: plugin.Version is the single source both read from.
	plugin.Version = version

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a tailwindsort.yaml configuration file")
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command; main delegates to this directly.
func Execute() error {
	return rootCmd.Execute()
}
