package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/giftex-inc/giftex/internal/interfaces/cli/migrate"
	"github.com/giftex-inc/giftex/internal/interfaces/cli/seed"
	"github.com/giftex-inc/giftex/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "giftex",
		Short: "Giftex - institutional site and technical assistance portal",
		Long:  `Giftex serves the GIFT Excellence institutional site and the authenticated technical assistance portal, with built-in migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
