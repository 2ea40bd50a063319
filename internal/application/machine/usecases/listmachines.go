package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ListMachinesQuery struct {
	Page     int
	PageSize int
}

type AdminMachineItem struct {
	ID           uint       `json:"id"`
	OwnerID      uint       `json:"owner_id"`
	ModelID      uint       `json:"model_id"`
	SerialNumber string     `json:"serial_number,omitempty"`
	City         string     `json:"city,omitempty"`
	UF           string     `json:"uf,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ListMachinesResult struct {
	Machines []AdminMachineItem
	Total    int64
	Page     int
	PageSize int
}

// ListMachinesUseCase is the back-office view across all owners.
type ListMachinesUseCase struct {
	machineRepo machine.Repository
	logger      logger.Interface
}

func NewListMachinesUseCase(machineRepo machine.Repository, logger logger.Interface) *ListMachinesUseCase {
	return &ListMachinesUseCase{
		machineRepo: machineRepo,
		logger:      logger,
	}
}

func (uc *ListMachinesUseCase) Execute(ctx context.Context, query ListMachinesQuery) (*ListMachinesResult, error) {
	page := query.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	machines, total, err := uc.machineRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]AdminMachineItem, 0, len(machines))
	for _, m := range machines {
		items = append(items, AdminMachineItem{
			ID:           m.ID(),
			OwnerID:      m.OwnerID(),
			ModelID:      m.ModelID(),
			SerialNumber: m.SerialNumber(),
			City:         m.City(),
			UF:           m.UF(),
			PurchaseDate: m.PurchaseDate(),
			Notes:        m.Notes(),
			CreatedAt:    m.CreatedAt(),
		})
	}

	return &ListMachinesResult{
		Machines: items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
