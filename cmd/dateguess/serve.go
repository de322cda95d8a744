package main

import (
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/dateguess/internal/config"
	"github.com/az-ai-labs/dateguess/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(a.cfg, a.logger).Start(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String(config.KeyAddr, "", "address to bind")
	flags.Int(config.KeyPort, 8081, "port to bind")                          //nolint:mnd
	flags.Float64(config.KeyRateLimit, 10, "requests per second per client") //nolint:mnd
	flags.Int(config.KeyBurst, 20, "burst size per client")                  //nolint:mnd
	a.bindFlags(cmd, false, config.KeyAddr, config.KeyPort, config.KeyRateLimit, config.KeyBurst)
	return cmd
}
