package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ChangeTicketPriorityCommand struct {
	TicketID uint
	Priority string
}

type ChangeTicketPriorityResult struct {
	TicketID  uint
	Priority  string
	UpdatedAt time.Time
}

type ChangeTicketPriorityUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangeTicketPriorityUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ChangeTicketPriorityUseCase {
	return &ChangeTicketPriorityUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeTicketPriorityUseCase) Execute(ctx context.Context, cmd ChangeTicketPriorityCommand) (*ChangeTicketPriorityResult, error) {
	priority, err := valueobjects.NewTicketPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.ChangePriority(priority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to change ticket priority", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return &ChangeTicketPriorityResult{
		TicketID:  t.ID(),
		Priority:  t.Priority().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
