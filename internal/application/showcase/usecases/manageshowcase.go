package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/showcase"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
	"github.com/giftex-inc/giftex/internal/shared/slugify"
)

type SaveShowcaseMachineCommand struct {
	ID               uint
	Name             string
	Category         string
	ShortDescription string
	Description      string
	Capacity         string
	Power            string
	Dimensions       string
	Warranty         string
	ImagePath        string
	Featured         bool
	DisplayOrder     int
	Active           bool
}

func (cmd SaveShowcaseMachineCommand) specs() showcase.Specs {
	return showcase.Specs{
		Capacity:   cmd.Capacity,
		Power:      cmd.Power,
		Dimensions: cmd.Dimensions,
		Warranty:   cmd.Warranty,
	}
}

type SaveShowcaseMachineResult struct {
	ID        uint
	Slug      string
	UpdatedAt time.Time
}

// SaveShowcaseMachineUseCase creates or updates a showcased product. Slugs
// are derived from the name and must stay unique.
type SaveShowcaseMachineUseCase struct {
	showcaseRepo showcase.Repository
	logger       logger.Interface
}

func NewSaveShowcaseMachineUseCase(showcaseRepo showcase.Repository, logger logger.Interface) *SaveShowcaseMachineUseCase {
	return &SaveShowcaseMachineUseCase{
		showcaseRepo: showcaseRepo,
		logger:       logger,
	}
}

func (uc *SaveShowcaseMachineUseCase) Execute(ctx context.Context, cmd SaveShowcaseMachineCommand) (*SaveShowcaseMachineResult, error) {
	category, err := catalog.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ID == 0 {
		return uc.create(ctx, cmd, category)
	}
	return uc.update(ctx, cmd, category)
}

func (uc *SaveShowcaseMachineUseCase) create(ctx context.Context, cmd SaveShowcaseMachineCommand, category catalog.Category) (*SaveShowcaseMachineResult, error) {
	if err := uc.checkSlug(ctx, cmd.Name, 0); err != nil {
		return nil, err
	}

	m, err := showcase.NewMachine(cmd.Name, category, cmd.ShortDescription, cmd.Description, cmd.specs(), cmd.ImagePath, cmd.Featured, cmd.DisplayOrder)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !cmd.Active {
		m.Deactivate()
	}

	if err := uc.showcaseRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create showcase machine", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("showcase machine created", "id", m.ID(), "slug", m.Slug())
	return &SaveShowcaseMachineResult{ID: m.ID(), Slug: m.Slug(), UpdatedAt: m.UpdatedAt()}, nil
}

func (uc *SaveShowcaseMachineUseCase) update(ctx context.Context, cmd SaveShowcaseMachineCommand, category catalog.Category) (*SaveShowcaseMachineResult, error) {
	m, err := uc.showcaseRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if slugify.Slug(cmd.Name) != m.Slug() {
		if err := uc.checkSlug(ctx, cmd.Name, cmd.ID); err != nil {
			return nil, err
		}
	}

	if err := m.Update(cmd.Name, category, cmd.ShortDescription, cmd.Description, cmd.specs(), cmd.ImagePath, cmd.Featured, cmd.DisplayOrder); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active {
		m.Activate()
	} else {
		m.Deactivate()
	}

	if err := uc.showcaseRepo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update showcase machine", "id", cmd.ID, "error", err)
		return nil, err
	}

	return &SaveShowcaseMachineResult{ID: m.ID(), Slug: m.Slug(), UpdatedAt: m.UpdatedAt()}, nil
}

func (uc *SaveShowcaseMachineUseCase) checkSlug(ctx context.Context, name string, selfID uint) error {
	slug := slugify.Slug(name)
	if slug == "" {
		return errors.NewValidationError("name does not produce a valid slug")
	}
	exists, err := uc.showcaseRepo.ExistsBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if exists && selfID == 0 {
		return errors.NewConflictError("a machine with this name already exists")
	}
	if exists && selfID != 0 {
		current, err := uc.showcaseRepo.FindByID(ctx, selfID)
		if err != nil {
			return err
		}
		if current.Slug() != slug {
			return errors.NewConflictError("a machine with this name already exists")
		}
	}
	return nil
}

type ListAllShowcaseQuery struct {
	Page     int
	PageSize int
}

type AdminShowcaseItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Category     string `json:"category"`
	Featured     bool   `json:"featured"`
	DisplayOrder int    `json:"display_order"`
	Active       bool   `json:"active"`
}

type ListAllShowcaseResult struct {
	Machines []AdminShowcaseItem
	Total    int64
	Page     int
	PageSize int
}

// ListAllShowcaseUseCase is the back-office listing including inactive rows.
type ListAllShowcaseUseCase struct {
	showcaseRepo showcase.Repository
	logger       logger.Interface
}

func NewListAllShowcaseUseCase(showcaseRepo showcase.Repository, logger logger.Interface) *ListAllShowcaseUseCase {
	return &ListAllShowcaseUseCase{
		showcaseRepo: showcaseRepo,
		logger:       logger,
	}
}

func (uc *ListAllShowcaseUseCase) Execute(ctx context.Context, query ListAllShowcaseQuery) (*ListAllShowcaseResult, error) {
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

	machines, total, err := uc.showcaseRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]AdminShowcaseItem, 0, len(machines))
	for _, m := range machines {
		items = append(items, AdminShowcaseItem{
			ID:           m.ID(),
			Name:         m.Name(),
			Slug:         m.Slug(),
			Category:     m.Category().String(),
			Featured:     m.IsFeatured(),
			DisplayOrder: m.DisplayOrder(),
			Active:       m.IsActive(),
		})
	}

	return &ListAllShowcaseResult{
		Machines: items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
