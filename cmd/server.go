package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajaykumar8188/lubes-management/internal/infrastructure/config"
	"github.com/ajaykumar8188/lubes-management/internal/server"
	"github.com/ajaykumar8188/lubes-management/pkg/logger"
)

var seedOnStart bool

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the storefront API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(slog.Default())
		logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.Env == "development",
		})

		if err := server.Run(cmd.Context(), cfg, seedOnStart); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serverCmd.Flags().BoolVar(&seedOnStart, "seed", false, "seed starter accounts and catalog before serving")
	rootCmd.AddCommand(serverCmd)
}
