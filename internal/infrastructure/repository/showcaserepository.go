package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/mappers"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
	db "github.com/giftex-inc/giftex/internal/shared/db"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
)

type ShowcaseRepository struct {
	db     *gorm.DB
	mapper mappers.ShowcaseMapper
}

func NewShowcaseRepository(database *gorm.DB) *ShowcaseRepository {
	return &ShowcaseRepository{
		db:     database,
		mapper: mappers.NewShowcaseMapper(),
	}
}

func (r *ShowcaseRepository) Create(ctx context.Context, m *showcase.Machine) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create showcase machine: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *ShowcaseRepository) Update(ctx context.Context, m *showcase.Machine) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ShowcaseMachineModel{}).
		Where("id = ?", model.ID).
		Select("name", "slug", "category", "short_description", "description",
			"image_path", "featured", "display_order", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update showcase machine: %w", result.Error)
	}

	return nil
}

func (r *ShowcaseRepository) FindByID(ctx context.Context, id uint) (*showcase.Machine, error) {
	var model models.ShowcaseMachineModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("showcase machine not found")
		}
		return nil, fmt.Errorf("failed to find showcase machine: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ShowcaseRepository) FindActiveBySlug(ctx context.Context, slug string) (*showcase.Machine, error) {
	var model models.ShowcaseMachineModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("slug = ? AND active = ?", slug, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("showcase machine not found")
		}
		return nil, fmt.Errorf("failed to find showcase machine: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ShowcaseRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.ShowcaseMachineModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug existence: %w", err)
	}

	return count > 0, nil
}

func (r *ShowcaseRepository) ListActive(ctx context.Context, category *catalog.Category) ([]*showcase.Machine, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("active = ?", true)

	if category != nil {
		query = query.Where("category = ?", category.String())
	}

	var rows []models.ShowcaseMachineModel
	if err := query.
		Order("display_order ASC, name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list showcase machines: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *ShowcaseRepository) ListFeatured(ctx context.Context, limit int) ([]*showcase.Machine, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ShowcaseMachineModel
	if err := tx.
		Where("active = ? AND featured = ?", true, true).
		Order("display_order ASC, name ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list featured machines: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *ShowcaseRepository) List(ctx context.Context, offset, limit int) ([]*showcase.Machine, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ShowcaseMachineModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count showcase machines: %w", err)
	}

	var rows []models.ShowcaseMachineModel
	if err := tx.
		Order("display_order ASC, name ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list showcase machines: %w", err)
	}

	machines, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}

	return machines, total, nil
}

func (r *ShowcaseRepository) toDomainList(rows []models.ShowcaseMachineModel) ([]*showcase.Machine, error) {
	machines := make([]*showcase.Machine, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}
	return machines, nil
}
