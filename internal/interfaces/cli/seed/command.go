package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giftex-inc/giftex/internal/infrastructure/auth"
	"github.com/giftex-inc/giftex/internal/infrastructure/config"
	"github.com/giftex-inc/giftex/internal/infrastructure/database"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/seeds"
	"github.com/giftex-inc/giftex/internal/infrastructure/repository"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

var (
	env      string
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load seed data",
		Long:  `Load catalog, user and showcase seed data from a YAML file. Existing records are skipped so the command can be rerun.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "./configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	file, err := seeds.LoadFile(seedFile)
	if err != nil {
		return err
	}

	db := database.Get()
	seeder := seeds.NewSeeder(
		repository.NewUserRepository(db),
		repository.NewMachineModelRepository(db),
		repository.NewSymptomRepository(db),
		repository.NewPartRepository(db),
		repository.NewShowcaseRepository(db),
		auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost),
	)

	logger.Info("loading seed data", "file", seedFile)

	if err := seeder.Run(context.Background(), file); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("seed data loaded successfully")
	return nil
}
