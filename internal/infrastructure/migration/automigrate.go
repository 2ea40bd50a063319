package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.MachineModelModel{},
		&models.SymptomModel{},
		&models.PartModel{},
		&models.PartCompatibleModelModel{},
		&models.ManualModel{},
		&models.MachineModel{},
		&models.TicketModel{},
		&models.TicketMediaModel{},
		&models.TicketMessageModel{},
		&models.PartRequestModel{},
		&models.PartRequestItemModel{},
		&models.SiteSettingModel{},
		&models.ShowcaseMachineModel{},
	}
}

// GormAutoMigrateStrategy migrates by struct definition. Used in
// development.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, migrateModels ...interface{}) error {
	if len(migrateModels) == 0 {
		migrateModels = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(migrateModels))

	if err := db.AutoMigrate(migrateModels...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	s.logger.Infow("gorm auto-migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
