package showcase

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
)

// Repository persists showcase machines.
type Repository interface {
	Create(ctx context.Context, machine *Machine) error
	Update(ctx context.Context, machine *Machine) error
	FindByID(ctx context.Context, id uint) (*Machine, error)
	FindActiveBySlug(ctx context.Context, slug string) (*Machine, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	// ListActive orders by display order then name. A nil category returns
	// every active machine.
	ListActive(ctx context.Context, category *catalog.Category) ([]*Machine, error)
	ListFeatured(ctx context.Context, limit int) ([]*Machine, error)
	List(ctx context.Context, offset, limit int) ([]*Machine, int64, error)
}
