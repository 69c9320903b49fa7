package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trustrentctl",
		Short:         "TrustRent operator tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "config/config.dev.yaml", "Path to configuration file")

	rootCmd.AddCommand(
		reportCmd(),
		adviseCmd(),
		summaryCmd(),
		jobsCmd(),
	)
	return rootCmd
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
