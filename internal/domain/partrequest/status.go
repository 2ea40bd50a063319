// Package partrequest holds the spare-part request aggregate.
package partrequest

import "fmt"

// Status tracks a part request through the quoting workflow.
type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusAnalysis Status = "ANALYSIS"
	StatusQuoted   Status = "QUOTED"
	StatusSent     Status = "SENT"
	StatusCanceled Status = "CANCELED"
)

var statusOrder = map[Status]int{
	StatusOpen:     0,
	StatusAnalysis: 1,
	StatusQuoted:   2,
	StatusSent:     3,
}

var validStatuses = map[Status]bool{
	StatusOpen:     true,
	StatusAnalysis: true,
	StatusQuoted:   true,
	StatusSent:     true,
	StatusCanceled: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsTerminal() bool {
	return s == StatusSent || s == StatusCanceled
}

// CanTransitionTo allows forward moves along the chain, skipping steps, and
// cancellation from any non-terminal status.
func (s Status) CanTransitionTo(target Status) bool {
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

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid part request status: %s", s)
	}
	return status, nil
}

func AllStatuses() []Status {
	return []Status{StatusOpen, StatusAnalysis, StatusQuoted, StatusSent, StatusCanceled}
}
