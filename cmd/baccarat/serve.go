package main

import (
	"baccarat_sim/internal/app"

	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(*configPath).Run()
		},
	}
}
