// Command chartctl runs maintenance tasks: seeding series and minting admin tokens.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chartctl",
		Short:         "Maintenance commands for the chart service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newSeedCmd(),
		newTokenCmd(),
	)
	return root
}

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	if err := newRootCmd().Execute(); err != nil {
		log.Println("[ERROR]", err)
		os.Exit(1)
	}
}
