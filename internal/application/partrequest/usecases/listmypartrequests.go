package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ListMyPartRequestsQuery struct {
	OwnerID  uint
	Page     int
	PageSize int
}

type PartRequestListItem struct {
	ID          uint      `json:"id"`
	MachineID   uint      `json:"machine_id"`
	ContactName string    `json:"contact_name"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListMyPartRequestsResult struct {
	Requests []PartRequestListItem
	Total    int64
	Page     int
	PageSize int
}

type ListMyPartRequestsUseCase struct {
	requestRepo partrequest.Repository
	logger      logger.Interface
}

func NewListMyPartRequestsUseCase(requestRepo partrequest.Repository, logger logger.Interface) *ListMyPartRequestsUseCase {
	return &ListMyPartRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListMyPartRequestsUseCase) Execute(ctx context.Context, query ListMyPartRequestsQuery) (*ListMyPartRequestsResult, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	requests, total, err := uc.requestRepo.ListByOwner(ctx, query.OwnerID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListMyPartRequestsResult{
		Requests: toPartRequestListItems(requests),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

func toPartRequestListItems(requests []*partrequest.PartRequest) []PartRequestListItem {
	items := make([]PartRequestListItem, 0, len(requests))
	for _, r := range requests {
		items = append(items, PartRequestListItem{
			ID:          r.ID(),
			MachineID:   r.MachineID(),
			ContactName: r.Contact().Name,
			Status:      r.Status().String(),
			ItemCount:   len(r.Items()),
			CreatedAt:   r.CreatedAt(),
			UpdatedAt:   r.UpdatedAt(),
		})
	}
	return items
}
