package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type SaveMachineModelCommand struct {
	ID          uint
	Name        string
	Category    string
	Description string
	Active      bool
}

type SaveMachineModelResult struct {
	ID        uint
	UpdatedAt time.Time
}

type SaveMachineModelUseCase struct {
	modelRepo catalog.MachineModelRepository
	logger    logger.Interface
}

func NewSaveMachineModelUseCase(modelRepo catalog.MachineModelRepository, logger logger.Interface) *SaveMachineModelUseCase {
	return &SaveMachineModelUseCase{
		modelRepo: modelRepo,
		logger:    logger,
	}
}

func (uc *SaveMachineModelUseCase) Execute(ctx context.Context, cmd SaveMachineModelCommand) (*SaveMachineModelResult, error) {
	category, err := catalog.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ID == 0 {
		model, err := catalog.NewMachineModel(cmd.Name, category, cmd.Description)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if !cmd.Active {
			model.Deactivate()
		}
		if err := uc.modelRepo.Create(ctx, model); err != nil {
			uc.logger.Errorw("failed to create machine model", "name", cmd.Name, "error", err)
			return nil, err
		}
		uc.logger.Infow("machine model created", "model_id", model.ID(), "name", cmd.Name)
		return &SaveMachineModelResult{ID: model.ID(), UpdatedAt: model.UpdatedAt()}, nil
	}

	model, err := uc.modelRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := model.Update(cmd.Name, category, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active {
		model.Activate()
	} else {
		model.Deactivate()
	}
	if err := uc.modelRepo.Update(ctx, model); err != nil {
		uc.logger.Errorw("failed to update machine model", "model_id", cmd.ID, "error", err)
		return nil, err
	}
	return &SaveMachineModelResult{ID: model.ID(), UpdatedAt: model.UpdatedAt()}, nil
}

type MachineModelItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

type ListMachineModelsQuery struct {
	Page       int
	PageSize   int
	ActiveOnly bool
}

type ListMachineModelsResult struct {
	Models   []MachineModelItem
	Total    int64
	Page     int
	PageSize int
}

type ListMachineModelsUseCase struct {
	modelRepo catalog.MachineModelRepository
	logger    logger.Interface
}

func NewListMachineModelsUseCase(modelRepo catalog.MachineModelRepository, logger logger.Interface) *ListMachineModelsUseCase {
	return &ListMachineModelsUseCase{
		modelRepo: modelRepo,
		logger:    logger,
	}
}

func (uc *ListMachineModelsUseCase) Execute(ctx context.Context, query ListMachineModelsQuery) (*ListMachineModelsResult, error) {
	if query.ActiveOnly {
		models, err := uc.modelRepo.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		return &ListMachineModelsResult{
			Models: toModelItems(models),
			Total:  int64(len(models)),
			Page:   1,
		}, nil
	}

	page, pageSize := normalizePage(query.Page, query.PageSize)
	models, total, err := uc.modelRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &ListMachineModelsResult{
		Models:   toModelItems(models),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toModelItems(models []*catalog.MachineModel) []MachineModelItem {
	items := make([]MachineModelItem, 0, len(models))
	for _, m := range models {
		items = append(items, MachineModelItem{
			ID:          m.ID(),
			Name:        m.Name(),
			Category:    m.Category().String(),
			Description: m.Description(),
			Active:      m.IsActive(),
		})
	}
	return items
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
