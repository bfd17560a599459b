package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajaykumar8188/lubes-management/internal/infrastructure/config"
	mongodb "github.com/ajaykumar8188/lubes-management/internal/infrastructure/db/mongo"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Loads the starter accounts and lubricant catalog into MongoDB",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(slog.Default())

		client, db, err := mongodb.Connect(cmd.Context(), mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "connect mongo: %v\n", err)
			os.Exit(1)
		}
		defer client.Disconnect(cmd.Context())

		if err := mongodb.Seed(cmd.Context(), db); err != nil {
			fmt.Fprintf(os.Stderr, "seed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("database seeded")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
