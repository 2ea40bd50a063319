package ticket

import (
	"fmt"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
)

// Message is one entry in the ticket conversation.
type Message struct {
	id         uint
	ticketID   uint
	senderID   uint
	senderRole valueobjects.SenderRole
	body       string
	createdAt  time.Time
}

func NewMessage(ticketID, senderID uint, senderRole valueobjects.SenderRole, body string) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if senderID == 0 {
		return nil, fmt.Errorf("sender ID is required")
	}
	if !senderRole.IsValid() {
		return nil, fmt.Errorf("invalid sender role")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body is required")
	}
	if len(body) > 4000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 4000 characters")
	}

	return &Message{
		ticketID:   ticketID,
		senderID:   senderID,
		senderRole: senderRole,
		body:       body,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID, senderID uint,
	senderRole valueobjects.SenderRole,
	body string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if !senderRole.IsValid() {
		return nil, fmt.Errorf("invalid sender role")
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		senderID:   senderID,
		senderRole: senderRole,
		body:       body,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint                            { return m.id }
func (m *Message) TicketID() uint                      { return m.ticketID }
func (m *Message) SenderID() uint                      { return m.senderID }
func (m *Message) SenderRole() valueobjects.SenderRole { return m.senderRole }
func (m *Message) Body() string                        { return m.body }
func (m *Message) CreatedAt() time.Time                { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
