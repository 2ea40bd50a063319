package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/mappers"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
	db "github.com/giftex-inc/giftex/internal/shared/db"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/constants"
)

type MachineModelRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewMachineModelRepository(database *gorm.DB) *MachineModelRepository {
	return &MachineModelRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *MachineModelRepository) Create(ctx context.Context, mm *catalog.MachineModel) error {
	model := r.mapper.MachineModelToModel(mm)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create machine model: %w", err)
	}

	return mm.SetID(model.ID)
}

func (r *MachineModelRepository) Update(ctx context.Context, mm *catalog.MachineModel) error {
	model := r.mapper.MachineModelToModel(mm)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MachineModelModel{}).
		Where("id = ?", model.ID).
		Select("name", "category", "description", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update machine model: %w", result.Error)
	}

	return nil
}

func (r *MachineModelRepository) FindByID(ctx context.Context, id uint) (*catalog.MachineModel, error) {
	var model models.MachineModelModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("machine model not found")
		}
		return nil, fmt.Errorf("failed to find machine model: %w", err)
	}

	return r.mapper.MachineModelToDomain(&model)
}

func (r *MachineModelRepository) ListActive(ctx context.Context) ([]*catalog.MachineModel, error) {
	var modelRows []models.MachineModelModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("active = ?", true).
		Order("name ASC").
		Find(&modelRows).Error; err != nil {
		return nil, fmt.Errorf("failed to list machine models: %w", err)
	}

	result := make([]*catalog.MachineModel, 0, len(modelRows))
	for i := range modelRows {
		mm, err := r.mapper.MachineModelToDomain(&modelRows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, mm)
	}

	return result, nil
}

func (r *MachineModelRepository) List(ctx context.Context, offset, limit int) ([]*catalog.MachineModel, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.MachineModelModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count machine models: %w", err)
	}

	var modelRows []models.MachineModelModel
	if err := tx.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&modelRows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list machine models: %w", err)
	}

	result := make([]*catalog.MachineModel, 0, len(modelRows))
	for i := range modelRows {
		mm, err := r.mapper.MachineModelToDomain(&modelRows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, mm)
	}

	return result, total, nil
}

type SymptomRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *SymptomRepository) Create(ctx context.Context, s *catalog.Symptom) error {
	model := r.mapper.SymptomToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create symptom: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SymptomRepository) Update(ctx context.Context, s *catalog.Symptom) error {
	model := r.mapper.SymptomToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SymptomModel{}).
		Where("id = ?", model.ID).
		Select("name", "category", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update symptom: %w", result.Error)
	}

	return nil
}

func (r *SymptomRepository) FindByID(ctx context.Context, id uint) (*catalog.Symptom, error) {
	var model models.SymptomModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("symptom not found")
		}
		return nil, fmt.Errorf("failed to find symptom: %w", err)
	}

	return r.mapper.SymptomToDomain(&model)
}

func (r *SymptomRepository) ListActive(ctx context.Context) ([]*catalog.Symptom, error) {
	return r.listActive(ctx, nil)
}

func (r *SymptomRepository) ListActiveByCategory(ctx context.Context, category catalog.Category) ([]*catalog.Symptom, error) {
	return r.listActive(ctx, &category)
}

func (r *SymptomRepository) listActive(ctx context.Context, category *catalog.Category) ([]*catalog.Symptom, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("active = ?", true)

	if category != nil {
		query = query.Where("category = ?", category.String())
	}

	var rows []models.SymptomModel
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list symptoms: %w", err)
	}

	result := make([]*catalog.Symptom, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.SymptomToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}

	return result, nil
}

func (r *SymptomRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Symptom, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.SymptomModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count symptoms: %w", err)
	}

	var rows []models.SymptomModel
	if err := tx.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list symptoms: %w", err)
	}

	result := make([]*catalog.Symptom, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.SymptomToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, s)
	}

	return result, total, nil
}

type PartRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewPartRepository(database *gorm.DB) *PartRepository {
	return &PartRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *PartRepository) Create(ctx context.Context, p *catalog.Part) error {
	model, _ := r.mapper.PartToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if appErrors.IsDuplicateError(err) {
			return appErrors.NewConflictError("a part with this code already exists")
		}
		return fmt.Errorf("failed to create part: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return r.replaceCompatibility(tx, p)
}

func (r *PartRepository) Update(ctx context.Context, p *catalog.Part) error {
	model, _ := r.mapper.PartToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PartModel{}).
		Where("id = ?", model.ID).
		Select("name", "code", "description", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		if appErrors.IsDuplicateError(result.Error) {
			return appErrors.NewConflictError("a part with this code already exists")
		}
		return fmt.Errorf("failed to update part: %w", result.Error)
	}

	return r.replaceCompatibility(tx, p)
}

// replaceCompatibility rewrites the join rows to match the entity.
func (r *PartRepository) replaceCompatibility(tx *gorm.DB, p *catalog.Part) error {
	if err := tx.
		Where("part_id = ?", p.ID()).
		Delete(&models.PartCompatibleModelModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear part compatibility: %w", err)
	}

	_, joins := r.mapper.PartToModel(p)
	if len(joins) == 0 {
		return nil
	}

	if err := tx.Create(&joins).Error; err != nil {
		return fmt.Errorf("failed to save part compatibility: %w", err)
	}

	return nil
}

func (r *PartRepository) FindByID(ctx context.Context, id uint) (*catalog.Part, error) {
	var model models.PartModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("part not found")
		}
		return nil, fmt.Errorf("failed to find part: %w", err)
	}

	compat, err := r.loadCompatibility(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}

	return r.mapper.PartToDomain(&model, compat[model.ID])
}

func (r *PartRepository) ListActive(ctx context.Context) ([]*catalog.Part, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.PartModel
	if err := tx.
		Where("active = ?", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	return r.toDomainList(tx, rows)
}

func (r *PartRepository) ListActiveCompatibleWith(ctx context.Context, modelID uint) ([]*catalog.Part, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.PartModel
	if err := tx.
		Joins(fmt.Sprintf("JOIN %s pcm ON pcm.part_id = %s.id", constants.TablePartCompat, constants.TableParts)).
		Where("pcm.model_id = ?", modelID).
		Where(constants.TableParts+".active = ?", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list compatible parts: %w", err)
	}

	return r.toDomainList(tx, rows)
}

func (r *PartRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Part, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.PartModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count parts: %w", err)
	}

	var rows []models.PartModel
	if err := tx.
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list parts: %w", err)
	}

	parts, err := r.toDomainList(tx, rows)
	if err != nil {
		return nil, 0, err
	}

	return parts, total, nil
}

func (r *PartRepository) toDomainList(tx *gorm.DB, rows []models.PartModel) ([]*catalog.Part, error) {
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	compat, err := r.loadCompatibility(tx, ids)
	if err != nil {
		return nil, err
	}

	parts := make([]*catalog.Part, 0, len(rows))
	for i := range rows {
		p, err := r.mapper.PartToDomain(&rows[i], compat[rows[i].ID])
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}

	return parts, nil
}

func (r *PartRepository) loadCompatibility(tx *gorm.DB, partIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint, len(partIDs))
	if len(partIDs) == 0 {
		return result, nil
	}

	var joins []models.PartCompatibleModelModel
	if err := tx.
		Where("part_id IN ?", partIDs).
		Find(&joins).Error; err != nil {
		return nil, fmt.Errorf("failed to load part compatibility: %w", err)
	}

	for _, join := range joins {
		result[join.PartID] = append(result[join.PartID], join.ModelID)
	}

	return result, nil
}

type ManualRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
}

func NewManualRepository(database *gorm.DB) *ManualRepository {
	return &ManualRepository{
		db:     database,
		mapper: mappers.NewCatalogMapper(),
	}
}

func (r *ManualRepository) Create(ctx context.Context, m *catalog.Manual) error {
	model := r.mapper.ManualToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create manual: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *ManualRepository) Update(ctx context.Context, m *catalog.Manual) error {
	model := r.mapper.ManualToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ManualModel{}).
		Where("id = ?", model.ID).
		Select("title", "storage_path", "external_url", "active", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update manual: %w", result.Error)
	}

	return nil
}

func (r *ManualRepository) FindByID(ctx context.Context, id uint) (*catalog.Manual, error) {
	var model models.ManualModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("manual not found")
		}
		return nil, fmt.Errorf("failed to find manual: %w", err)
	}

	return r.mapper.ManualToDomain(&model)
}

func (r *ManualRepository) ListActive(ctx context.Context) ([]*catalog.Manual, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ManualModel
	if err := tx.
		Joins(fmt.Sprintf("JOIN %s mm ON mm.id = %s.model_id", constants.TableMachineModels, constants.TableManuals)).
		Where(constants.TableManuals+".active = ?", true).
		Order(fmt.Sprintf("mm.name ASC, %s.title ASC", constants.TableManuals)).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list manuals: %w", err)
	}

	result := make([]*catalog.Manual, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ManualToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, nil
}

func (r *ManualRepository) List(ctx context.Context, offset, limit int) ([]*catalog.Manual, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ManualModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count manuals: %w", err)
	}

	var rows []models.ManualModel
	if err := tx.
		Order("title ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list manuals: %w", err)
	}

	result := make([]*catalog.Manual, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ManualToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, m)
	}

	return result, total, nil
}
