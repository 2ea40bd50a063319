package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ListMyTicketsQuery struct {
	OwnerID  uint
	Page     int
	PageSize int
}

type TicketListItem struct {
	ID          uint      `json:"id"`
	MachineID   uint      `json:"machine_id"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListMyTicketsResult struct {
	Tickets  []TicketListItem
	Total    int64
	Page     int
	PageSize int
}

type ListMyTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListMyTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListMyTicketsUseCase {
	return &ListMyTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListMyTicketsUseCase) Execute(ctx context.Context, query ListMyTicketsQuery) (*ListMyTicketsResult, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	tickets, total, err := uc.ticketRepo.ListByOwner(ctx, query.OwnerID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListMyTicketsResult{
		Tickets:  toTicketListItems(tickets),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
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

func toTicketListItems(tickets []*ticket.Ticket) []TicketListItem {
	items := make([]TicketListItem, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, TicketListItem{
			ID:          t.ID(),
			MachineID:   t.MachineID(),
			Category:    t.Category().String(),
			Description: t.Description(),
			Status:      t.Status().String(),
			Priority:    t.Priority().String(),
			CreatedAt:   t.CreatedAt(),
			UpdatedAt:   t.UpdatedAt(),
		})
	}
	return items
}
