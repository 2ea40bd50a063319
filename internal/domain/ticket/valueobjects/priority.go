package valueobjects

import "fmt"

// TicketPriority ranks urgency. The customer picks one when opening the
// ticket; staff can adjust it later.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "LOW"
	PriorityMedium TicketPriority = "MEDIUM"
	PriorityHigh   TicketPriority = "HIGH"
)

var validPriorities = map[TicketPriority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func (p TicketPriority) String() string {
	return string(p)
}

func (p TicketPriority) IsValid() bool {
	return validPriorities[p]
}

func NewTicketPriority(s string) (TicketPriority, error) {
	priority := TicketPriority(s)
	if !priority.IsValid() {
		return "", fmt.Errorf("invalid ticket priority: %s", s)
	}
	return priority, nil
}
