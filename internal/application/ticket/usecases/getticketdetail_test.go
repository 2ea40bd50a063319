package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

func TestGetTicketDetail(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
			return ticketInStatus(t, id, valueobjects.StatusWaiting), nil
		},
	}
	mediaRepo := &mockMediaRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
			m, err := ticket.ReconstructMedia(1, ticketID, "tickets/tm_x.jpg", "foto.jpg", "image/jpeg", 1024, time.Now())
			require.NoError(t, err)
			return []*ticket.Media{m}, nil
		},
	}
	messageRepo := &mockMessageRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
			msg, err := ticket.ReconstructMessage(2, ticketID, 3, valueobjects.SenderClient, "oi", time.Now())
			require.NoError(t, err)
			return []*ticket.Message{msg}, nil
		},
	}

	uc := NewGetTicketDetailUseCase(ticketRepo, mediaRepo, messageRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), GetTicketDetailQuery{
		TicketID:  11,
		ActorID:   3,
		ActorRole: authorization.RoleClient,
	})
	require.NoError(t, err)
	assert.Equal(t, "WAITING", result.Status)
	assert.True(t, result.AcceptsMessages)
	require.Len(t, result.Media, 1)
	assert.Equal(t, "foto.jpg", result.Media[0].OriginalName)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, "CLIENT", result.Messages[0].SenderRole)
}

func TestGetTicketDetailAdminBypassesOwnership(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketInStatus(t, id, valueobjects.StatusOpen), nil
		},
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
			t.Fatal("admin lookup must not be owner-scoped")
			return nil, nil
		},
	}

	uc := NewGetTicketDetailUseCase(ticketRepo, &mockMediaRepository{}, &mockMessageRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetTicketDetailQuery{
		TicketID:  11,
		ActorID:   1,
		ActorRole: authorization.RoleAdmin,
	})
	require.NoError(t, err)
}

func TestGetTicketMediaCrossTicket(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		FindByIDAndOwnerFunc: func(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
			return ticketInStatus(t, id, valueobjects.StatusOpen), nil
		},
	}
	mediaRepo := &mockMediaRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Media, error) {
			m, err := ticket.ReconstructMedia(id, 999, "tickets/tm_y.jpg", "foto.jpg", "image/jpeg", 10, time.Now())
			require.NoError(t, err)
			return m, nil
		},
	}

	uc := NewGetTicketMediaUseCase(ticketRepo, mediaRepo, &mockMediaStore{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), GetTicketMediaQuery{
		TicketID:  11,
		MediaID:   1,
		ActorID:   3,
		ActorRole: authorization.RoleClient,
	})
	assert.True(t, appErrors.IsNotFoundError(err))
}
