package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ListPartRequestsQuery struct {
	Status   string
	OwnerID  *uint
	Page     int
	PageSize int
}

type ListPartRequestsResult struct {
	Requests []PartRequestListItem
	Total    int64
	Page     int
	PageSize int
}

// ListPartRequestsUseCase is the back-office listing across all owners.
type ListPartRequestsUseCase struct {
	requestRepo partrequest.Repository
	logger      logger.Interface
}

func NewListPartRequestsUseCase(requestRepo partrequest.Repository, logger logger.Interface) *ListPartRequestsUseCase {
	return &ListPartRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListPartRequestsUseCase) Execute(ctx context.Context, query ListPartRequestsQuery) (*ListPartRequestsResult, error) {
	filters := partrequest.ListFilters{OwnerID: query.OwnerID}
	if query.Status != "" {
		status, err := partrequest.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filters.Status = &status
	}

	page, pageSize := normalizePage(query.Page, query.PageSize)

	requests, total, err := uc.requestRepo.List(ctx, filters, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListPartRequestsResult{
		Requests: toPartRequestListItems(requests),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
