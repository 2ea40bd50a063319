package partrequest

import "context"

// ListFilters narrows back-office part request listings.
type ListFilters struct {
	Status  *Status
	OwnerID *uint
}

// Repository persists part requests together with their items.
type Repository interface {
	Create(ctx context.Context, request *PartRequest) error
	Update(ctx context.Context, request *PartRequest) error
	FindByID(ctx context.Context, id uint) (*PartRequest, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*PartRequest, error)
	ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*PartRequest, int64, error)
	List(ctx context.Context, filters ListFilters, offset, limit int) ([]*PartRequest, int64, error)
	CountByOwnerAndStatuses(ctx context.Context, ownerID uint, statuses []Status) (int64, error)
	CountByStatuses(ctx context.Context, statuses []Status) (int64, error)
}
