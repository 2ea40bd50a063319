package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type GetTicketDetailQuery struct {
	TicketID  uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type TicketMediaItem struct {
	ID           uint      `json:"id"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

type TicketMessageItem struct {
	ID         uint      `json:"id"`
	SenderID   uint      `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketDetailResult struct {
	ID              uint                `json:"id"`
	MachineID       uint                `json:"machine_id"`
	Category        string              `json:"category"`
	SymptomID       *uint               `json:"symptom_id,omitempty"`
	Description     string              `json:"description"`
	Status          string              `json:"status"`
	Priority        string              `json:"priority"`
	AcceptsMessages bool                `json:"accepts_messages"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Media           []TicketMediaItem   `json:"media"`
	Messages        []TicketMessageItem `json:"messages"`
}

type GetTicketDetailUseCase struct {
	ticketRepo  ticket.Repository
	mediaRepo   ticket.MediaRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewGetTicketDetailUseCase(
	ticketRepo ticket.Repository,
	mediaRepo ticket.MediaRepository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *GetTicketDetailUseCase {
	return &GetTicketDetailUseCase{
		ticketRepo:  ticketRepo,
		mediaRepo:   mediaRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *GetTicketDetailUseCase) Execute(ctx context.Context, query GetTicketDetailQuery) (*TicketDetailResult, error) {
	t, err := uc.findScoped(ctx, query)
	if err != nil {
		return nil, err
	}

	media, err := uc.mediaRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	messages, err := uc.messageRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	result := &TicketDetailResult{
		ID:              t.ID(),
		MachineID:       t.MachineID(),
		Category:        t.Category().String(),
		SymptomID:       t.SymptomID(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		AcceptsMessages: t.AcceptsMessages(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		Media:           make([]TicketMediaItem, 0, len(media)),
		Messages:        make([]TicketMessageItem, 0, len(messages)),
	}
	for _, m := range media {
		result.Media = append(result.Media, TicketMediaItem{
			ID:           m.ID(),
			OriginalName: m.OriginalName(),
			ContentType:  m.ContentType(),
			SizeBytes:    m.SizeBytes(),
			CreatedAt:    m.CreatedAt(),
		})
	}
	for _, msg := range messages {
		result.Messages = append(result.Messages, TicketMessageItem{
			ID:         msg.ID(),
			SenderID:   msg.SenderID(),
			SenderRole: msg.SenderRole().String(),
			Body:       msg.Body(),
			CreatedAt:  msg.CreatedAt(),
		})
	}
	return result, nil
}

func (uc *GetTicketDetailUseCase) findScoped(ctx context.Context, query GetTicketDetailQuery) (*ticket.Ticket, error) {
	if query.ActorRole.IsAdmin() {
		return uc.ticketRepo.FindByID(ctx, query.TicketID)
	}
	return uc.ticketRepo.FindByIDAndOwner(ctx, query.TicketID, query.ActorID)
}
