package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status   string
	Priority string
	OwnerID  *uint
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []TicketListItem
	Total    int64
	Page     int
	PageSize int
}

// ListTicketsUseCase is the back-office listing across all owners.
type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filters := ticket.ListFilters{OwnerID: query.OwnerID}
	if query.Status != "" {
		status, err := valueobjects.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filters.Status = &status
	}
	if query.Priority != "" {
		priority, err := valueobjects.NewTicketPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filters.Priority = &priority
	}

	page, pageSize := normalizePage(query.Page, query.PageSize)

	tickets, total, err := uc.ticketRepo.List(ctx, filters, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{
		Tickets:  toTicketListItems(tickets),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
