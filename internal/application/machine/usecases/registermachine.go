package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type RegisterMachineCommand struct {
	OwnerID      uint
	ModelID      uint
	SerialNumber string
	City         string
	UF           string
	PurchaseDate *time.Time
	Notes        string
}

type RegisterMachineResult struct {
	MachineID uint
	CreatedAt time.Time
}

type RegisterMachineUseCase struct {
	machineRepo machine.Repository
	modelRepo   catalog.MachineModelRepository
	logger      logger.Interface
}

func NewRegisterMachineUseCase(
	machineRepo machine.Repository,
	modelRepo catalog.MachineModelRepository,
	logger logger.Interface,
) *RegisterMachineUseCase {
	return &RegisterMachineUseCase{
		machineRepo: machineRepo,
		modelRepo:   modelRepo,
		logger:      logger,
	}
}

func (uc *RegisterMachineUseCase) Execute(ctx context.Context, cmd RegisterMachineCommand) (*RegisterMachineResult, error) {
	if cmd.OwnerID == 0 {
		return nil, errors.NewValidationError("owner ID is required")
	}
	if cmd.ModelID == 0 {
		return nil, errors.NewValidationError("model is required")
	}

	model, err := uc.modelRepo.FindByID(ctx, cmd.ModelID)
	if err != nil {
		return nil, err
	}
	if !model.IsActive() {
		return nil, errors.NewValidationError("model is not available")
	}

	m, err := machine.NewMachine(cmd.OwnerID, cmd.ModelID, cmd.SerialNumber, cmd.City, cmd.UF, cmd.PurchaseDate, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.machineRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to register machine", "owner_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	uc.logger.Infow("machine registered", "machine_id", m.ID(), "owner_id", cmd.OwnerID, "model_id", cmd.ModelID)

	return &RegisterMachineResult{
		MachineID: m.ID(),
		CreatedAt: m.CreatedAt(),
	}, nil
}
