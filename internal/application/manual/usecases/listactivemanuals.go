package usecases

import (
	"context"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type ManualItem struct {
	ID          uint   `json:"id"`
	ModelID     uint   `json:"model_id"`
	Title       string `json:"title"`
	ExternalURL string `json:"external_url,omitempty"`
	FileBacked  bool   `json:"file_backed"`
}

type ListActiveManualsResult struct {
	Manuals []ManualItem
}

// ListActiveManualsUseCase lists the manual library shown to logged-in
// customers: every active manual, ordered by model name then title. The
// library is not narrowed to owned models; customers routinely look up
// manuals for machines bought second-hand and not yet registered.
type ListActiveManualsUseCase struct {
	manualRepo catalog.ManualRepository
	logger     logger.Interface
}

func NewListActiveManualsUseCase(
	manualRepo catalog.ManualRepository,
	logger logger.Interface,
) *ListActiveManualsUseCase {
	return &ListActiveManualsUseCase{
		manualRepo: manualRepo,
		logger:     logger,
	}
}

func (uc *ListActiveManualsUseCase) Execute(ctx context.Context) (*ListActiveManualsResult, error) {
	manuals, err := uc.manualRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := &ListActiveManualsResult{Manuals: []ManualItem{}}
	for _, manual := range manuals {
		result.Manuals = append(result.Manuals, ManualItem{
			ID:          manual.ID(),
			ModelID:     manual.ModelID(),
			Title:       manual.Title(),
			ExternalURL: manual.ExternalURL(),
			FileBacked:  manual.IsFileBacked(),
		})
	}
	return result, nil
}
