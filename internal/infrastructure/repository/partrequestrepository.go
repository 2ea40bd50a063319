package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/mappers"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	db "github.com/giftex-inc/giftex/internal/shared/db"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
)

type PartRequestRepository struct {
	db     *gorm.DB
	mapper mappers.PartRequestMapper
}

func NewPartRequestRepository(database *gorm.DB) *PartRequestRepository {
	return &PartRequestRepository{
		db:     database,
		mapper: mappers.NewPartRequestMapper(),
	}
}

func (r *PartRequestRepository) Create(ctx context.Context, request *partrequest.PartRequest) error {
	model, _ := r.mapper.ToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create part request: %w", err)
	}

	if err := request.SetID(model.ID); err != nil {
		return err
	}

	// Items are written after the header so they carry the generated ID.
	_, itemModels := r.mapper.ToModel(request)
	if len(itemModels) == 0 {
		return nil
	}

	if err := tx.Create(&itemModels).Error; err != nil {
		return fmt.Errorf("failed to create part request items: %w", err)
	}

	return nil
}

func (r *PartRequestRepository) Update(ctx context.Context, request *partrequest.PartRequest) error {
	model, _ := r.mapper.ToModel(request)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PartRequestModel{}).
		Where("id = ?", model.ID).
		Select("status", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update part request: %w", result.Error)
	}

	return nil
}

func (r *PartRequestRepository) FindByID(ctx context.Context, id uint) (*partrequest.PartRequest, error) {
	var model models.PartRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("part request not found")
		}
		return nil, fmt.Errorf("failed to find part request: %w", err)
	}

	return r.withItems(tx, &model)
}

func (r *PartRequestRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*partrequest.PartRequest, error) {
	var model models.PartRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TablePartRequests)).
		Where(constants.TablePartRequests+".id = ? AND m.owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("part request not found")
		}
		return nil, fmt.Errorf("failed to find part request: %w", err)
	}

	return r.withItems(tx, &model)
}

func (r *PartRequestRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*partrequest.PartRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	base := tx.
		Model(&models.PartRequestModel{}).
		Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TablePartRequests)).
		Where("m.owner_id = ?", ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count part requests: %w", err)
	}

	var rows []models.PartRequestModel
	if err := base.
		Order(constants.TablePartRequests + ".created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list part requests: %w", err)
	}

	return r.toDomainList(tx, rows, total)
}

func (r *PartRequestRepository) List(ctx context.Context, filters partrequest.ListFilters, offset, limit int) ([]*partrequest.PartRequest, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PartRequestModel{})

	if filters.Status != nil {
		query = query.Where(constants.TablePartRequests+".status = ?", filters.Status.String())
	}
	if filters.OwnerID != nil {
		query = query.
			Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TablePartRequests)).
			Where("m.owner_id = ?", *filters.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count part requests: %w", err)
	}

	var rows []models.PartRequestModel
	if err := query.
		Order(constants.TablePartRequests + ".created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list part requests: %w", err)
	}

	return r.toDomainList(tx, rows, total)
}

func (r *PartRequestRepository) CountByOwnerAndStatuses(ctx context.Context, ownerID uint, statuses []partrequest.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.PartRequestModel{}).
		Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TablePartRequests)).
		Where("m.owner_id = ?", ownerID)

	if len(statuses) > 0 {
		query = query.Where(constants.TablePartRequests+".status IN ?", requestStatusStrings(statuses))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count part requests: %w", err)
	}

	return count, nil
}

func (r *PartRequestRepository) CountByStatuses(ctx context.Context, statuses []partrequest.Status) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.PartRequestModel{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", requestStatusStrings(statuses))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count part requests: %w", err)
	}

	return count, nil
}

func (r *PartRequestRepository) withItems(tx *gorm.DB, model *models.PartRequestModel) (*partrequest.PartRequest, error) {
	items, err := r.loadItems(tx, []uint{model.ID})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(model, items[model.ID])
}

func (r *PartRequestRepository) toDomainList(tx *gorm.DB, rows []models.PartRequestModel, total int64) ([]*partrequest.PartRequest, int64, error) {
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}

	items, err := r.loadItems(tx, ids)
	if err != nil {
		return nil, 0, err
	}

	requests := make([]*partrequest.PartRequest, 0, len(rows))
	for i := range rows {
		req, err := r.mapper.ToDomain(&rows[i], items[rows[i].ID])
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

func (r *PartRequestRepository) loadItems(tx *gorm.DB, requestIDs []uint) (map[uint][]models.PartRequestItemModel, error) {
	result := make(map[uint][]models.PartRequestItemModel, len(requestIDs))
	if len(requestIDs) == 0 {
		return result, nil
	}

	var rows []models.PartRequestItemModel
	if err := tx.
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load part request items: %w", err)
	}

	for _, row := range rows {
		result[row.RequestID] = append(result[row.RequestID], row)
	}

	return result, nil
}

func requestStatusStrings(statuses []partrequest.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
