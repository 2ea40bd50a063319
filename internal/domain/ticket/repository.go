package ticket

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
)

// ListFilters narrows back-office ticket listings.
type ListFilters struct {
	Status   *valueobjects.TicketStatus
	Priority *valueobjects.TicketPriority
	OwnerID  *uint
}

// Repository persists tickets.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	// FindByIDAndOwner resolves ownership through the machine. A wrong
	// owner gets the same miss as a missing ticket.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*Ticket, error)
	ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*Ticket, int64, error)
	List(ctx context.Context, filters ListFilters, offset, limit int) ([]*Ticket, int64, error)
	CountByOwnerAndStatuses(ctx context.Context, ownerID uint, statuses []valueobjects.TicketStatus) (int64, error)
	CountByStatuses(ctx context.Context, statuses []valueobjects.TicketStatus) (int64, error)
	// CountCreatedBetween counts tickets opened in [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

// MediaRepository persists ticket attachments.
type MediaRepository interface {
	Create(ctx context.Context, media *Media) error
	FindByID(ctx context.Context, id uint) (*Media, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Media, error)
	CountByTicket(ctx context.Context, ticketID uint) (int64, error)
}

// MessageRepository persists the ticket conversation.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Message, error)
}
