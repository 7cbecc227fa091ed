package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awsqed/config-formatter/internal/plugin"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		c := commit
		if len(c) > 7 {
			c = c[:7]
		}
		fmt.Fprintf(cmd.OutOrStdout(), "tailwindsort version %s (%s)\n", plugin.Version, c)
	},
}
