// Package ticket holds the support ticket aggregate: the ticket itself plus
// its media attachments and conversation messages.
package ticket

import (
	"fmt"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
)

// Ticket is an assistance request a customer opens for one of their
// machines. Ownership is derived through the machine.
type Ticket struct {
	id          uint
	machineID   uint
	openedByID  uint
	category    catalog.Category
	symptomID   *uint
	description string
	status      valueobjects.TicketStatus
	priority    valueobjects.TicketPriority
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(machineID, openedByID uint, category catalog.Category, symptomID *uint, description string, priority valueobjects.TicketPriority) (*Ticket, error) {
	if machineID == 0 {
		return nil, fmt.Errorf("machine ID is required")
	}
	if openedByID == 0 {
		return nil, fmt.Errorf("opener ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if symptomID != nil && *symptomID == 0 {
		return nil, fmt.Errorf("symptom ID cannot be zero")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid ticket priority")
	}

	now := time.Now()
	return &Ticket{
		machineID:   machineID,
		openedByID:  openedByID,
		category:    category,
		symptomID:   symptomID,
		description: description,
		status:      valueobjects.StatusOpen,
		priority:    priority,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	machineID, openedByID uint,
	category catalog.Category,
	symptomID *uint,
	description string,
	status valueobjects.TicketStatus,
	priority valueobjects.TicketPriority,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid ticket priority")
	}

	return &Ticket{
		id:          id,
		machineID:   machineID,
		openedByID:  openedByID,
		category:    category,
		symptomID:   symptomID,
		description: description,
		status:      status,
		priority:    priority,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                               { return t.id }
func (t *Ticket) MachineID() uint                        { return t.machineID }
func (t *Ticket) OpenedByID() uint                       { return t.openedByID }
func (t *Ticket) Category() catalog.Category             { return t.category }
func (t *Ticket) SymptomID() *uint                       { return t.symptomID }
func (t *Ticket) Description() string                    { return t.description }
func (t *Ticket) Status() valueobjects.TicketStatus      { return t.status }
func (t *Ticket) Priority() valueobjects.TicketPriority  { return t.priority }
func (t *Ticket) CreatedAt() time.Time                   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time                   { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus enforces the workflow transitions. Terminal tickets reject
// every change.
func (t *Ticket) ChangeStatus(target valueobjects.TicketStatus) error {
	if !t.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition ticket from %s to %s", t.status, target)
	}
	t.status = target
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangePriority(priority valueobjects.TicketPriority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid ticket priority")
	}
	t.priority = priority
	t.updatedAt = time.Now()
	return nil
}

// AcceptsMessages reports whether the conversation is still open.
func (t *Ticket) AcceptsMessages() bool {
	return !t.status.IsTerminal()
}
