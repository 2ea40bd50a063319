package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ListShowcaseQuery struct {
	Category string
}

type ShowcaseItem struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Category         string `json:"category"`
	ShortDescription string `json:"short_description"`
	ImagePath        string `json:"image_path,omitempty"`
	Featured         bool   `json:"featured"`
}

type ListShowcaseResult struct {
	Machines []ShowcaseItem
}

type ListShowcaseUseCase struct {
	showcaseRepo showcase.Repository
	logger       logger.Interface
}

func NewListShowcaseUseCase(showcaseRepo showcase.Repository, logger logger.Interface) *ListShowcaseUseCase {
	return &ListShowcaseUseCase{
		showcaseRepo: showcaseRepo,
		logger:       logger,
	}
}

func (uc *ListShowcaseUseCase) Execute(ctx context.Context, query ListShowcaseQuery) (*ListShowcaseResult, error) {
	var category *catalog.Category
	if query.Category != "" {
		c, err := catalog.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		category = &c
	}

	machines, err := uc.showcaseRepo.ListActive(ctx, category)
	if err != nil {
		return nil, err
	}

	return &ListShowcaseResult{Machines: toShowcaseItems(machines)}, nil
}

// ListFeaturedUseCase feeds the homepage highlight strip.
type ListFeaturedUseCase struct {
	showcaseRepo showcase.Repository
	logger       logger.Interface
}

func NewListFeaturedUseCase(showcaseRepo showcase.Repository, logger logger.Interface) *ListFeaturedUseCase {
	return &ListFeaturedUseCase{
		showcaseRepo: showcaseRepo,
		logger:       logger,
	}
}

func (uc *ListFeaturedUseCase) Execute(ctx context.Context, limit int) (*ListShowcaseResult, error) {
	if limit < 1 {
		limit = 4
	}
	machines, err := uc.showcaseRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &ListShowcaseResult{Machines: toShowcaseItems(machines)}, nil
}

func toShowcaseItems(machines []*showcase.Machine) []ShowcaseItem {
	items := make([]ShowcaseItem, 0, len(machines))
	for _, m := range machines {
		items = append(items, ShowcaseItem{
			ID:               m.ID(),
			Name:             m.Name(),
			Slug:             m.Slug(),
			Category:         m.Category().String(),
			ShortDescription: m.ShortDescription(),
			ImagePath:        m.ImagePath(),
			Featured:         m.IsFeatured(),
		})
	}
	return items
}
