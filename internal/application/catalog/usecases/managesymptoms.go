package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type SaveSymptomCommand struct {
	ID       uint
	Name     string
	Category string
	Active   bool
}

type SaveSymptomResult struct {
	ID        uint
	UpdatedAt time.Time
}

type SaveSymptomUseCase struct {
	symptomRepo catalog.SymptomRepository
	logger      logger.Interface
}

func NewSaveSymptomUseCase(symptomRepo catalog.SymptomRepository, logger logger.Interface) *SaveSymptomUseCase {
	return &SaveSymptomUseCase{
		symptomRepo: symptomRepo,
		logger:      logger,
	}
}

func (uc *SaveSymptomUseCase) Execute(ctx context.Context, cmd SaveSymptomCommand) (*SaveSymptomResult, error) {
	category, err := catalog.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ID == 0 {
		symptom, err := catalog.NewSymptom(cmd.Name, category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if !cmd.Active {
			symptom.Deactivate()
		}
		if err := uc.symptomRepo.Create(ctx, symptom); err != nil {
			uc.logger.Errorw("failed to create symptom", "name", cmd.Name, "error", err)
			return nil, err
		}
		return &SaveSymptomResult{ID: symptom.ID(), UpdatedAt: symptom.UpdatedAt()}, nil
	}

	symptom, err := uc.symptomRepo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := symptom.Update(cmd.Name, category); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Active {
		symptom.Activate()
	} else {
		symptom.Deactivate()
	}
	if err := uc.symptomRepo.Update(ctx, symptom); err != nil {
		uc.logger.Errorw("failed to update symptom", "symptom_id", cmd.ID, "error", err)
		return nil, err
	}
	return &SaveSymptomResult{ID: symptom.ID(), UpdatedAt: symptom.UpdatedAt()}, nil
}

type SymptomItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Active   bool   `json:"active"`
}

type ListSymptomsQuery struct {
	Category string
	Page     int
	PageSize int
	// ActiveOnly narrows to active symptoms; the ticket form sets it
	// together with Category.
	ActiveOnly bool
}

type ListSymptomsResult struct {
	Symptoms []SymptomItem
	Total    int64
	Page     int
	PageSize int
}

type ListSymptomsUseCase struct {
	symptomRepo catalog.SymptomRepository
	logger      logger.Interface
}

func NewListSymptomsUseCase(symptomRepo catalog.SymptomRepository, logger logger.Interface) *ListSymptomsUseCase {
	return &ListSymptomsUseCase{
		symptomRepo: symptomRepo,
		logger:      logger,
	}
}

func (uc *ListSymptomsUseCase) Execute(ctx context.Context, query ListSymptomsQuery) (*ListSymptomsResult, error) {
	if query.ActiveOnly {
		var (
			symptoms []*catalog.Symptom
			err      error
		)
		if query.Category != "" {
			category, cerr := catalog.NewCategory(query.Category)
			if cerr != nil {
				return nil, errors.NewValidationError(cerr.Error())
			}
			symptoms, err = uc.symptomRepo.ListActiveByCategory(ctx, category)
		} else {
			symptoms, err = uc.symptomRepo.ListActive(ctx)
		}
		if err != nil {
			return nil, err
		}
		return &ListSymptomsResult{
			Symptoms: toSymptomItems(symptoms),
			Total:    int64(len(symptoms)),
			Page:     1,
		}, nil
	}

	page, pageSize := normalizePage(query.Page, query.PageSize)
	symptoms, total, err := uc.symptomRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &ListSymptomsResult{
		Symptoms: toSymptomItems(symptoms),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func toSymptomItems(symptoms []*catalog.Symptom) []SymptomItem {
	items := make([]SymptomItem, 0, len(symptoms))
	for _, s := range symptoms {
		items = append(items, SymptomItem{
			ID:       s.ID(),
			Name:     s.Name(),
			Category: s.Category().String(),
			Active:   s.IsActive(),
		})
	}
	return items
}
