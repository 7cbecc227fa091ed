package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/awsqed/config-formatter/internal/server"
)

var (
	serveAddr              string
	serveRequestsPerSecond int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run an HTTP server exposing the formatter over a JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8787", "address to listen on")
	serveCmd.Flags().IntVar(&serveRequestsPerSecond, "rate-limit", 20, "requests per second allowed across all clients (0 disables rate limiting)")
}

func runServe(cmd *cobra.Command, args []string) error {
	handler := server.New(server.Config{
		RequestsPerSecond: serveRequestsPerSecond,
	}, log)

	log.WithField("addr", serveAddr).Info("starting formatting server")
	if err := http.ListenAndServe(serveAddr, handler); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
