package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type MachineItem struct {
	ID            uint
	ModelID       uint
	ModelName     string
	ModelCategory string
	SerialNumber  string
	City          string
	UF            string
	PurchaseDate  *time.Time
	Notes         string
	CreatedAt     time.Time
}

type ListMyMachinesResult struct {
	Machines []MachineItem
}

type ListMyMachinesUseCase struct {
	machineRepo machine.Repository
	modelRepo   catalog.MachineModelRepository
	logger      logger.Interface
}

func NewListMyMachinesUseCase(
	machineRepo machine.Repository,
	modelRepo catalog.MachineModelRepository,
	logger logger.Interface,
) *ListMyMachinesUseCase {
	return &ListMyMachinesUseCase{
		machineRepo: machineRepo,
		modelRepo:   modelRepo,
		logger:      logger,
	}
}

func (uc *ListMyMachinesUseCase) Execute(ctx context.Context, ownerID uint) (*ListMyMachinesResult, error) {
	machines, err := uc.machineRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	models := make(map[uint]*catalog.MachineModel)
	items := make([]MachineItem, 0, len(machines))
	for _, m := range machines {
		model, ok := models[m.ModelID()]
		if !ok {
			model, err = uc.modelRepo.FindByID(ctx, m.ModelID())
			if err != nil {
				uc.logger.Warnw("machine references unknown model", "machine_id", m.ID(), "model_id", m.ModelID())
				model = nil
			}
			models[m.ModelID()] = model
		}

		item := MachineItem{
			ID:           m.ID(),
			ModelID:      m.ModelID(),
			SerialNumber: m.SerialNumber(),
			City:         m.City(),
			UF:           m.UF(),
			PurchaseDate: m.PurchaseDate(),
			Notes:        m.Notes(),
			CreatedAt:    m.CreatedAt(),
		}
		if model != nil {
			item.ModelName = model.Name()
			item.ModelCategory = string(model.Category())
		}
		items = append(items, item)
	}

	return &ListMyMachinesResult{Machines: items}, nil
}
