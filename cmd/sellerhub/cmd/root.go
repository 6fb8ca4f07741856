package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sellerhub",
	Short: "SellerHub CLI tool",
	Long: `SellerHub CLI is a command-line interface for the seller dashboard service.

Available commands:
  serve       Start the seller API server
  profile     Fetch a seller profile and dashboard stats through the API
  milestones  Show milestone progress for an order count

Use "sellerhub [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
