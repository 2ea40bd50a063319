package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ChangeTicketStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeTicketStatusResult struct {
	TicketID  uint
	Status    string
	UpdatedAt time.Time
}

type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangeTicketStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) (*ChangeTicketStatusResult, error) {
	target, err := valueobjects.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	previous := t.Status()
	if err := t.ChangeStatus(target); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"from", previous.String(),
		"to", target.String())

	return &ChangeTicketStatusResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
