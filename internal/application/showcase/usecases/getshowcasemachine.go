package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/services/markdown"
)

type ShowcaseDetailResult struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Category         string `json:"category"`
	ShortDescription string `json:"short_description"`
	DescriptionHTML  string `json:"description_html"`
	Capacity         string `json:"capacity,omitempty"`
	Power            string `json:"power,omitempty"`
	Dimensions       string `json:"dimensions,omitempty"`
	Warranty         string `json:"warranty,omitempty"`
	ImagePath        string `json:"image_path,omitempty"`
}

// GetShowcaseMachineUseCase resolves a public product page by slug. The
// staff-authored description is rendered to sanitized HTML.
type GetShowcaseMachineUseCase struct {
	showcaseRepo showcase.Repository
	markdown     markdown.Service
	logger       logger.Interface
}

func NewGetShowcaseMachineUseCase(
	showcaseRepo showcase.Repository,
	markdown markdown.Service,
	logger logger.Interface,
) *GetShowcaseMachineUseCase {
	return &GetShowcaseMachineUseCase{
		showcaseRepo: showcaseRepo,
		markdown:     markdown,
		logger:       logger,
	}
}

func (uc *GetShowcaseMachineUseCase) Execute(ctx context.Context, slug string) (*ShowcaseDetailResult, error) {
	m, err := uc.showcaseRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	descriptionHTML, err := uc.markdown.ToHTMLSanitized(m.Description())
	if err != nil {
		uc.logger.Warnw("failed to render showcase description", "slug", slug, "error", err)
		descriptionHTML = ""
	}

	specs := m.Specs()
	return &ShowcaseDetailResult{
		ID:               m.ID(),
		Name:             m.Name(),
		Slug:             m.Slug(),
		Category:         m.Category().String(),
		ShortDescription: m.ShortDescription(),
		DescriptionHTML:  descriptionHTML,
		Capacity:         specs.Capacity,
		Power:            specs.Power,
		Dimensions:       specs.Dimensions,
		Warranty:         specs.Warranty,
		ImagePath:        m.ImagePath(),
	}, nil
}
