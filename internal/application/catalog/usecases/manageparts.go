package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type SavePartCommand struct {
	ID                 uint
	Name               string
	Code               string
	Description        string
	CompatibleModelIDs []uint
	Active             bool
}

type SavePartResult struct {
	ID        uint
	UpdatedAt time.Time
}

type SavePartUseCase struct {
	partRepo  catalog.PartRepository
	modelRepo catalog.MachineModelRepository
	logger    logger.Interface
}

func NewSavePartUseCase(partRepo catalog.PartRepository, modelRepo catalog.MachineModelRepository, logger logger.Interface) *SavePartUseCase {
	return &SavePartUseCase{
		partRepo:  partRepo,
		modelRepo: modelRepo,
		logger:    logger,
	}
}

func (uc *SavePartUseCase) Execute(ctx context.Context, cmd SavePartCommand) (*SavePartResult, error) {
	for _, modelID := range cmd.CompatibleModelIDs {
		if _, err := uc.modelRepo.FindByID(ctx, modelID); err != nil {
			return nil, err
		}
	}

	if cmd.ID == 0 {
		part, err := catalog.NewPart(cmd.Name, cmd.Code, cmd.Description, cmd.CompatibleModelIDs)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if !cmd.Active {
			part.Deactivate()
		}
		if err := uc.partRepo.Create(ctx, part); err != nil {
			uc.logger.Errorw("failed to create part", "name", cmd.Name, "error", err)
			return nil, err
		}
		return &SavePartResult{ID: part.ID(), UpdatedAt: part.UpdatedAt()}, nil
	}

	part, err := uc.partRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := part.Update(cmd.Name, cmd.Code, cmd.Description, cmd.CompatibleModelIDs); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active {
		part.Activate()
	} else {
		part.Deactivate()
	}
	if err := uc.partRepo.Update(ctx, part); err != nil {
		uc.logger.Errorw("failed to update part", "part_id", cmd.ID, "error", err)
		return nil, err
	}
	return &SavePartResult{ID: part.ID(), UpdatedAt: part.UpdatedAt()}, nil
}

type PartItem struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Code               string `json:"code"`
	Description        string `json:"description,omitempty"`
	CompatibleModelIDs []uint `json:"compatible_model_ids"`
	Active             bool   `json:"active"`
}

type ListPartsQuery struct {
	Page     int
	PageSize int
}

type ListPartsResult struct {
	Parts    []PartItem
	Total    int64
	Page     int
	PageSize int
}

type ListPartsUseCase struct {
	partRepo catalog.PartRepository
	logger   logger.Interface
}

func NewListPartsUseCase(partRepo catalog.PartRepository, logger logger.Interface) *ListPartsUseCase {
	return &ListPartsUseCase{
		partRepo: partRepo,
		logger:   logger,
	}
}

func (uc *ListPartsUseCase) Execute(ctx context.Context, query ListPartsQuery) (*ListPartsResult, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)
	parts, total, err := uc.partRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]PartItem, 0, len(parts))
	for _, p := range parts {
		items = append(items, PartItem{
			ID:                 p.ID(),
			Name:               p.Name(),
			Code:               p.Code(),
			Description:        p.Description(),
			CompatibleModelIDs: p.CompatibleModelIDs(),
			Active:             p.IsActive(),
		})
	}

	return &ListPartsResult{
		Parts:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
