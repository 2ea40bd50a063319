package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ListSelectablePartsQuery struct {
	OwnerID   uint
	MachineID uint
}

type SelectablePart struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code,omitempty"`
	Description string `json:"description,omitempty"`
}

type ListSelectablePartsResult struct {
	Parts []SelectablePart
}

// ListSelectablePartsUseCase resolves which parts the customer may pick for
// a part request: active parts compatible with the machine's model.
type ListSelectablePartsUseCase struct {
	machineRepo machine.Repository
	partRepo    catalog.PartRepository
	logger      logger.Interface
}

func NewListSelectablePartsUseCase(
	machineRepo machine.Repository,
	partRepo catalog.PartRepository,
	logger logger.Interface,
) *ListSelectablePartsUseCase {
	return &ListSelectablePartsUseCase{
		machineRepo: machineRepo,
		partRepo:    partRepo,
		logger:      logger,
	}
}

func (uc *ListSelectablePartsUseCase) Execute(ctx context.Context, query ListSelectablePartsQuery) (*ListSelectablePartsResult, error) {
	m, err := uc.machineRepo.FindByIDAndOwner(ctx, query.MachineID, query.OwnerID)
	if err != nil {
		return nil, err
	}

	parts, err := uc.partRepo.ListActiveCompatibleWith(ctx, m.ModelID())
	if err != nil {
		return nil, err
	}

	result := &ListSelectablePartsResult{Parts: make([]SelectablePart, 0, len(parts))}
	for _, p := range parts {
		result.Parts = append(result.Parts, SelectablePart{
			ID:          p.ID(),
			Name:        p.Name(),
			Code:        p.Code(),
			Description: p.Description(),
		})
	}
	return result, nil
}
