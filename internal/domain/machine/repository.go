package machine

import "context"

// Repository persists customer machines.
type Repository interface {
	Create(ctx context.Context, machine *Machine) error
	Update(ctx context.Context, machine *Machine) error
	FindByID(ctx context.Context, id uint) (*Machine, error)
	// FindByIDAndOwner enforces ownership at the query level. A miss for a
	// wrong owner is indistinguishable from a missing row.
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*Machine, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*Machine, error)
	List(ctx context.Context, offset, limit int) ([]*Machine, int64, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}
