package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awsqed/config-formatter/internal/plugin"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print plugin identity and license text as JSON",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	payload := struct {
		plugin.Info
		Extensions []string `json:"extensions"`
		License    string   `json:"license"`
	}{
		Info:       plugin.Describe(),
		Extensions: plugin.Extensions,
		License:    plugin.LicenseText(),
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
