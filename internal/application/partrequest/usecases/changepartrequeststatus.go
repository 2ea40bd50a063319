package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ChangePartRequestStatusCommand struct {
	RequestID uint
	Status    string
}

type ChangePartRequestStatusResult struct {
	RequestID uint
	Status    string
	UpdatedAt time.Time
}

type ChangePartRequestStatusUseCase struct {
	requestRepo partrequest.Repository
	logger      logger.Interface
}

func NewChangePartRequestStatusUseCase(requestRepo partrequest.Repository, logger logger.Interface) *ChangePartRequestStatusUseCase {
	return &ChangePartRequestStatusUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ChangePartRequestStatusUseCase) Execute(ctx context.Context, cmd ChangePartRequestStatusCommand) (*ChangePartRequestStatusResult, error) {
	target, err := partrequest.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	request, err := uc.requestRepo.FindByID(ctx, cmd.RequestID)
	if err != nil {
		return nil, err
	}

	previous := request.Status()
	if err := request.ChangeStatus(target); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to change part request status", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("part request status changed",
		"request_id", request.ID(),
		"from", previous.String(),
		"to", target.String())

	return &ChangePartRequestStatusResult{
		RequestID: request.ID(),
		Status:    request.Status().String(),
		UpdatedAt: request.UpdatedAt(),
	}, nil
}
