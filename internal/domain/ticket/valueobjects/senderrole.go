package valueobjects

import "fmt"

// SenderRole marks who wrote a ticket message. It is pinned server-side
// from the authenticated session, never taken from the request body.
type SenderRole string

const (
	SenderClient SenderRole = "CLIENT"
	SenderAdmin  SenderRole = "ADMIN"
)

func (r SenderRole) String() string {
	return string(r)
}

func (r SenderRole) IsValid() bool {
	return r == SenderClient || r == SenderAdmin
}

func NewSenderRole(s string) (SenderRole, error) {
	role := SenderRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid sender role: %s", s)
	}
	return role, nil
}
