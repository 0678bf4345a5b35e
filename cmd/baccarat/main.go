// Command baccarat runs the strategy simulator either as an HTTP API or as a one-shot CLI run.
//
// Usage:
//
//	baccarat serve --config config.yaml
//	baccarat simulate --games 72 --unit 1 --steps 3 --seed 42
//	baccarat simulate --ledger follow_two_back/martingale --csv result.csv
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "baccarat",
		Short:         "Baccarat betting strategy simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to simulation config")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newSimulateCmd(&configPath))
	return root
}
