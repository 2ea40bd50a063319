package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type AddMessageCommand struct {
	TicketID  uint
	SenderID  uint
	ActorRole authorization.UserRole
	Body      string
}

type AddMessageResult struct {
	MessageID  uint
	SenderRole string
	CreatedAt  time.Time
}

// AddMessageUseCase appends to the ticket conversation. The sender role is
// pinned from the authenticated session, so a client can never speak as
// staff.
type AddMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewAddMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *AddMessageUseCase {
	return &AddMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *AddMessageUseCase) Execute(ctx context.Context, cmd AddMessageCommand) (*AddMessageResult, error) {
	var (
		t   *ticket.Ticket
		err error
	)
	senderRole := valueobjects.SenderClient
	if cmd.ActorRole.IsAdmin() {
		senderRole = valueobjects.SenderAdmin
		t, err = uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	} else {
		t, err = uc.ticketRepo.FindByIDAndOwner(ctx, cmd.TicketID, cmd.SenderID)
	}
	if err != nil {
		return nil, err
	}

	if !t.AcceptsMessages() {
		return nil, errors.NewConflictError("ticket is closed")
	}

	message, err := ticket.NewMessage(t.ID(), cmd.SenderID, senderRole, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		uc.logger.Errorw("failed to add ticket message", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	return &AddMessageResult{
		MessageID:  message.ID(),
		SenderRole: message.SenderRole().String(),
		CreatedAt:  message.CreatedAt(),
	}, nil
}
