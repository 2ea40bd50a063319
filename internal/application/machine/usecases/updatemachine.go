package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type UpdateMachineCommand struct {
	MachineID    uint
	OwnerID      uint
	SerialNumber string
	City         string
	UF           string
	PurchaseDate *time.Time
	Notes        string
}

type UpdateMachineResult struct {
	MachineID uint
	UpdatedAt time.Time
}

type UpdateMachineUseCase struct {
	machineRepo machine.Repository
	logger      logger.Interface
}

func NewUpdateMachineUseCase(machineRepo machine.Repository, logger logger.Interface) *UpdateMachineUseCase {
	return &UpdateMachineUseCase{
		machineRepo: machineRepo,
		logger:      logger,
	}
}

func (uc *UpdateMachineUseCase) Execute(ctx context.Context, cmd UpdateMachineCommand) (*UpdateMachineResult, error) {
	m, err := uc.machineRepo.FindByIDAndOwner(ctx, cmd.MachineID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := m.Update(cmd.SerialNumber, cmd.City, cmd.UF, cmd.PurchaseDate, cmd.Notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.machineRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update machine", "machine_id", cmd.MachineID, "error", err)
		return nil, err
	}

	return &UpdateMachineResult{
		MachineID: m.ID(),
		UpdatedAt: m.UpdatedAt(),
	}, nil
}
