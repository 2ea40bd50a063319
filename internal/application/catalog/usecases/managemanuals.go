package usecases

import (
	"context"
	"io"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/id"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

const manualSubdir = "manuals"

// ManualStorage persists uploaded manual files.
type ManualStorage interface {
	Save(subdir, prefix, originalName string, r io.Reader) (string, error)
	Remove(relPath string) error
}

// FileUpload is an uploaded manual document.
type FileUpload struct {
	OriginalName string
	Reader       io.Reader
}

type CreateManualCommand struct {
	ModelID     uint
	Title       string
	ExternalURL string
	File        *FileUpload
}

type CreateManualResult struct {
	ManualID  uint
	CreatedAt time.Time
}

// CreateManualUseCase attaches a manual to a model, either from an uploaded
// file or an external URL.
type CreateManualUseCase struct {
	manualRepo catalog.ManualRepository
	modelRepo  catalog.MachineModelRepository
	store      ManualStorage
	logger     logger.Interface
}

func NewCreateManualUseCase(
	manualRepo catalog.ManualRepository,
	modelRepo catalog.MachineModelRepository,
	store ManualStorage,
	logger logger.Interface,
) *CreateManualUseCase {
	return &CreateManualUseCase{
		manualRepo: manualRepo,
		modelRepo:  modelRepo,
		store:      store,
		logger:     logger,
	}
}

func (uc *CreateManualUseCase) Execute(ctx context.Context, cmd CreateManualCommand) (*CreateManualResult, error) {
	if cmd.File != nil && cmd.ExternalURL != "" {
		return nil, errors.NewValidationError("manual cannot have both a file and an external URL")
	}
	if cmd.File == nil && cmd.ExternalURL == "" {
		return nil, errors.NewValidationError("manual requires a file or an external URL")
	}

	if _, err := uc.modelRepo.FindByID(ctx, cmd.ModelID); err != nil {
		return nil, err
	}

	storagePath := ""
	if cmd.File != nil {
		path, err := uc.store.Save(manualSubdir, id.PrefixManualFile, cmd.File.OriginalName, cmd.File.Reader)
		if err != nil {
			uc.logger.Errorw("failed to store manual file", "error", err)
			return nil, errors.NewInternalError("failed to store manual file")
		}
		storagePath = path
	}

	manual, err := catalog.NewManual(cmd.ModelID, cmd.Title, storagePath, cmd.ExternalURL)
	if err != nil {
		if storagePath != "" {
			if rerr := uc.store.Remove(storagePath); rerr != nil {
				uc.logger.Warnw("failed to remove orphaned manual file", "path", storagePath, "error", rerr)
			}
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.manualRepo.Create(ctx, manual); err != nil {
		if storagePath != "" {
			if rerr := uc.store.Remove(storagePath); rerr != nil {
				uc.logger.Warnw("failed to remove orphaned manual file", "path", storagePath, "error", rerr)
			}
		}
		uc.logger.Errorw("failed to create manual", "model_id", cmd.ModelID, "error", err)
		return nil, err
	}

	uc.logger.Infow("manual created", "manual_id", manual.ID(), "model_id", cmd.ModelID, "file_backed", manual.IsFileBacked())
	return &CreateManualResult{ManualID: manual.ID(), CreatedAt: manual.CreatedAt()}, nil
}

type SetManualActiveCommand struct {
	ManualID uint
	Active   bool
}

type SetManualActiveUseCase struct {
	manualRepo catalog.ManualRepository
	logger     logger.Interface
}

func NewSetManualActiveUseCase(manualRepo catalog.ManualRepository, logger logger.Interface) *SetManualActiveUseCase {
	return &SetManualActiveUseCase{
		manualRepo: manualRepo,
		logger:     logger,
	}
}

func (uc *SetManualActiveUseCase) Execute(ctx context.Context, cmd SetManualActiveCommand) error {
	manual, err := uc.manualRepo.FindByID(ctx, cmd.ManualID)
	if err != nil {
		return err
	}
	if cmd.Active {
		manual.Activate()
	} else {
		manual.Deactivate()
	}
	if err := uc.manualRepo.Update(ctx, manual); err != nil {
		uc.logger.Errorw("failed to update manual", "manual_id", cmd.ManualID, "error", err)
		return err
	}
	return nil
}

type AdminManualItem struct {
	ID          uint   `json:"id"`
	ModelID     uint   `json:"model_id"`
	Title       string `json:"title"`
	ExternalURL string `json:"external_url,omitempty"`
	FileBacked  bool   `json:"file_backed"`
	Active      bool   `json:"active"`
}

type ListManualsQuery struct {
	Page     int
	PageSize int
}

type ListManualsResult struct {
	Manuals  []AdminManualItem
	Total    int64
	Page     int
	PageSize int
}

type ListManualsUseCase struct {
	manualRepo catalog.ManualRepository
	logger     logger.Interface
}

func NewListManualsUseCase(manualRepo catalog.ManualRepository, logger logger.Interface) *ListManualsUseCase {
	return &ListManualsUseCase{
		manualRepo: manualRepo,
		logger:     logger,
	}
}

func (uc *ListManualsUseCase) Execute(ctx context.Context, query ListManualsQuery) (*ListManualsResult, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)
	manuals, total, err := uc.manualRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]AdminManualItem, 0, len(manuals))
	for _, m := range manuals {
		items = append(items, AdminManualItem{
			ID:          m.ID(),
			ModelID:     m.ModelID(),
			Title:       m.Title(),
			ExternalURL: m.ExternalURL(),
			FileBacked:  m.IsFileBacked(),
			Active:      m.IsActive(),
		})
	}

	return &ListManualsResult{
		Manuals:  items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
