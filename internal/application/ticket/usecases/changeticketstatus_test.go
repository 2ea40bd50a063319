package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

func TestChangeTicketStatus(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketInStatus(t, id, valueobjects.StatusOpen), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return nil
		},
	}

	uc := NewChangeTicketStatusUseCase(ticketRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{TicketID: 11, Status: "TRIAGE"})
	require.NoError(t, err)
	assert.Equal(t, "TRIAGE", result.Status)
	require.NotNil(t, saved)
	assert.Equal(t, valueobjects.StatusTriage, saved.Status())
}

func TestChangeTicketStatusBackwardRejected(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketInStatus(t, id, valueobjects.StatusQuote), nil
		},
	}

	uc := NewChangeTicketStatusUseCase(ticketRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{TicketID: 11, Status: "OPEN"})
	assert.True(t, appErrors.IsConflictError(err))
}

func TestChangeTicketStatusFromTerminal(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketInStatus(t, id, valueobjects.StatusDone), nil
		},
	}

	uc := NewChangeTicketStatusUseCase(ticketRepo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{TicketID: 11, Status: "CANCELED"})
	assert.True(t, appErrors.IsConflictError(err))
}

func TestChangeTicketStatusInvalidValue(t *testing.T) {
	uc := NewChangeTicketStatusUseCase(&mockTicketRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChangeTicketStatusCommand{TicketID: 11, Status: "FECHADO"})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestChangeTicketPriority(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketInStatus(t, id, valueobjects.StatusOpen), nil
		},
	}

	uc := NewChangeTicketPriorityUseCase(ticketRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), ChangeTicketPriorityCommand{TicketID: 11, Priority: "HIGH"})
	require.NoError(t, err)
	assert.Equal(t, "HIGH", result.Priority)

	_, err = uc.Execute(context.Background(), ChangeTicketPriorityCommand{TicketID: 11, Priority: "URGENTE"})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestListTicketsInvalidFilter(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "WRONG"})
	assert.True(t, appErrors.IsValidationError(err))
}

func TestListTicketsAppliesFilters(t *testing.T) {
	var gotFilters ticket.ListFilters
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filters ticket.ListFilters, offset, limit int) ([]*ticket.Ticket, int64, error) {
			gotFilters = filters
			return []*ticket.Ticket{ticketInStatus(t, 1, valueobjects.StatusOpen)}, 1, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, logger.NewLogger())

	owner := uint(3)
	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Status:   "OPEN",
		Priority: "HIGH",
		OwnerID:  &owner,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.NotNil(t, gotFilters.Status)
	assert.Equal(t, valueobjects.StatusOpen, *gotFilters.Status)
	require.NotNil(t, gotFilters.Priority)
	assert.Equal(t, valueobjects.PriorityHigh, *gotFilters.Priority)
	require.NotNil(t, gotFilters.OwnerID)
	assert.Equal(t, uint(3), *gotFilters.OwnerID)
}
