package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awsqed/config-formatter/internal/plugin"
)

var checkCmd = &cobra.Command{
	Use:   "check <paths...>",
	Short: "Exit non-zero if any file would change under formatting",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, paths []string) error {
	cfg := loadConfiguration()

	var unformatted []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Error("could not read file")
			return fmt.Errorf("reading %s: %w", path, err)
		}

		out, err := plugin.Format(path, data, cfg)
		if err != nil {
			log.WithError(err).WithField("path", path).Error("could not check file")
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if out != nil {
			unformatted = append(unformatted, path)
		}
	}

	if len(unformatted) > 0 {
		for _, path := range unformatted {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return fmt.Errorf("%d file(s) would be reformatted", len(unformatted))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "all files formatted")
	return nil
}
