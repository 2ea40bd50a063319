package usecases

import (
	"context"
	"os"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

// ManualOpener reads a stored manual file back for download.
type ManualOpener interface {
	Open(relPath string) (*os.File, error)
}

type DownloadManualQuery struct {
	ManualID  uint
	ActorRole authorization.UserRole
}

type ManualFile struct {
	File  *os.File
	Title string
}

// DownloadManualUseCase streams a file-backed manual. Inactive manuals are
// hidden from customers; admins can still fetch them for review.
type DownloadManualUseCase struct {
	manualRepo catalog.ManualRepository
	mediaStore ManualOpener
	logger     logger.Interface
}

func NewDownloadManualUseCase(
	manualRepo catalog.ManualRepository,
	mediaStore ManualOpener,
	logger logger.Interface,
) *DownloadManualUseCase {
	return &DownloadManualUseCase{
		manualRepo: manualRepo,
		mediaStore: mediaStore,
		logger:     logger,
	}
}

func (uc *DownloadManualUseCase) Execute(ctx context.Context, query DownloadManualQuery) (*ManualFile, error) {
	manual, err := uc.manualRepo.FindByID(ctx, query.ManualID)
	if err != nil {
		return nil, err
	}

	if !query.ActorRole.IsAdmin() && !manual.IsActive() {
		return nil, errors.NewNotFoundError("manual not found")
	}

	if !manual.IsFileBacked() {
		return nil, errors.NewValidationError("manual is served from an external URL")
	}

	file, err := uc.mediaStore.Open(manual.StoragePath())
	if err != nil {
		uc.logger.Errorw("failed to open manual file", "manual_id", manual.ID(), "path", manual.StoragePath(), "error", err)
		return nil, errors.NewInternalError("failed to open manual")
	}

	return &ManualFile{File: file, Title: manual.Title()}, nil
}
