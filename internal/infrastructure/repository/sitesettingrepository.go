package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/giftex-inc/giftex/internal/domain/sitesetting"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/mappers"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
	db "github.com/giftex-inc/giftex/internal/shared/db"
)

type SiteSettingRepository struct {
	db     *gorm.DB
	mapper mappers.SiteSettingMapper
}

func NewSiteSettingRepository(database *gorm.DB) *SiteSettingRepository {
	return &SiteSettingRepository{
		db:     database,
		mapper: mappers.NewSiteSettingMapper(),
	}
}

// Get returns the solo row, or nil when it has never been saved.
func (r *SiteSettingRepository) Get(ctx context.Context) (*sitesetting.SiteSetting, error) {
	var model models.SiteSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, sitesetting.SoloID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load site settings: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SiteSettingRepository) Upsert(ctx context.Context, setting *sitesetting.SiteSetting) error {
	model := r.mapper.ToModel(setting)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to save site settings: %w", err)
	}

	return nil
}
