package cli

import (
	"github.com/spf13/cobra"

	"github.com/robenli/textalign/internal/api"
)

// defaultAddr is the default listen address for the HTTP API.
const defaultAddr = ":8080"

// serveCommand creates the serve command exposing the formatter over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the formatter as an HTTP API",
		Long: `Serve starts an HTTP server exposing the formatter for editor and
pipeline integration:

  POST /v1/format  {"text": ..., "width": N, "align": "left|right|justify"}

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return api.New(addr, c.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
