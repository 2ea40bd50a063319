package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/mappers"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
	db "github.com/giftex-inc/giftex/internal/shared/db"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
)

type MachineRepository struct {
	db     *gorm.DB
	mapper mappers.MachineMapper
}

func NewMachineRepository(database *gorm.DB) *MachineRepository {
	return &MachineRepository{
		db:     database,
		mapper: mappers.NewMachineMapper(),
	}
}

func (r *MachineRepository) Create(ctx context.Context, m *machine.Machine) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create machine: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MachineRepository) Update(ctx context.Context, m *machine.Machine) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MachineModel{}).
		Where("id = ?", model.ID).
		Select("serial_number", "purchase_date", "notes", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update machine: %w", result.Error)
	}

	return nil
}

func (r *MachineRepository) FindByID(ctx context.Context, id uint) (*machine.Machine, error) {
	var model models.MachineModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("machine not found")
		}
		return nil, fmt.Errorf("failed to find machine: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MachineRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*machine.Machine, error) {
	var model models.MachineModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("machine not found")
		}
		return nil, fmt.Errorf("failed to find machine: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MachineRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*machine.Machine, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.MachineModel
	if err := tx.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}

	machines := make([]*machine.Machine, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		machines = append(machines, m)
	}

	return machines, nil
}

func (r *MachineRepository) List(ctx context.Context, offset, limit int) ([]*machine.Machine, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.MachineModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count machines: %w", err)
	}

	var rows []models.MachineModel
	if err := tx.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list machines: %w", err)
	}

	machines := make([]*machine.Machine, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		machines = append(machines, m)
	}

	return machines, total, nil
}

func (r *MachineRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.MachineModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count machines: %w", err)
	}

	return count, nil
}
