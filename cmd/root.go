package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lubes-management",
	Short: "Role-gated storefront and administration API for a lubricant-products retailer",
}

// Execute runs the root command. It is called once from main.
func Execute() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
