// Package valueobjects defines the enumerated types used by the ticket
// aggregate.
package valueobjects

import "fmt"

// TicketStatus tracks a ticket along the assistance workflow.
type TicketStatus string

const (
	StatusOpen     TicketStatus = "OPEN"
	StatusTriage   TicketStatus = "TRIAGE"
	StatusWaiting  TicketStatus = "WAITING"
	StatusQuote    TicketStatus = "QUOTE"
	StatusSent     TicketStatus = "SENT"
	StatusDone     TicketStatus = "DONE"
	StatusCanceled TicketStatus = "CANCELED"
)

// statusOrder positions each status on the forward chain. CANCELED sits
// outside the chain and is reachable from any non-terminal status.
var statusOrder = map[TicketStatus]int{
	StatusOpen:    0,
	StatusTriage:  1,
	StatusWaiting: 2,
	StatusQuote:   3,
	StatusSent:    4,
	StatusDone:    5,
}

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:     true,
	StatusTriage:   true,
	StatusWaiting:  true,
	StatusQuote:    true,
	StatusSent:     true,
	StatusDone:     true,
	StatusCanceled: true,
}

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	return validTicketStatuses[s]
}

// IsTerminal reports whether no further transition is allowed.
func (s TicketStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCanceled
}

// CanTransitionTo allows forward moves along the chain, skipping steps, and
// cancellation from any non-terminal status. Backward moves are rejected.
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	if !s.IsValid() || !target.IsValid() || s == target {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusCanceled {
		return true
	}
	return statusOrder[target] > statusOrder[s]
}

func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

// AllTicketStatuses returns the enumeration in workflow order.
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{
		StatusOpen,
		StatusTriage,
		StatusWaiting,
		StatusQuote,
		StatusSent,
		StatusDone,
		StatusCanceled,
	}
}
