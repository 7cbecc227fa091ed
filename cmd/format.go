package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/awsqed/config-formatter/internal/plugin"
)

var writeInPlace bool

var formatCmd = &cobra.Command{
	Use:   "format <paths...>",
	Short: "Sort utility classes in the given files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "write the result back to each file instead of stdout")
}

func runFormat(cmd *cobra.Command, paths []string) error {
	cfg := loadConfiguration()

	for _, path := range paths {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			log.WithError(err).WithField("path", path).Error("could not read file")
			return fmt.Errorf("reading %s: %w", path, err)
		}

		out, err := plugin.Format(path, data, cfg)
		if err != nil {
			log.WithError(err).WithField("path", path).Error("could not format file")
			return fmt.Errorf("formatting %s: %w", path, err)
		}
		if out == nil {
			out = data
		}

		if writeInPlace && path != "-" {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				log.WithError(err).WithField("path", path).Error("could not write file")
				return fmt.Errorf("writing %s: %w", path, err)
			}
			continue
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	}

	return nil
}
