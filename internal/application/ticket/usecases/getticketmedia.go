package usecases

import (
	"context"
	"os"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

// MediaOpener reads a stored file back for download.
type MediaOpener interface {
	Open(relPath string) (*os.File, error)
}

type GetTicketMediaQuery struct {
	TicketID  uint
	MediaID   uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type TicketMediaFile struct {
	File         *os.File
	OriginalName string
	ContentType  string
	SizeBytes    int64
}

// GetTicketMediaUseCase streams a ticket attachment, rechecking ticket
// ownership before touching the filesystem.
type GetTicketMediaUseCase struct {
	ticketRepo ticket.Repository
	mediaRepo  ticket.MediaRepository
	mediaStore MediaOpener
	logger     logger.Interface
}

func NewGetTicketMediaUseCase(
	ticketRepo ticket.Repository,
	mediaRepo ticket.MediaRepository,
	mediaStore MediaOpener,
	logger logger.Interface,
) *GetTicketMediaUseCase {
	return &GetTicketMediaUseCase{
		ticketRepo: ticketRepo,
		mediaRepo:  mediaRepo,
		mediaStore: mediaStore,
		logger:     logger,
	}
}

func (uc *GetTicketMediaUseCase) Execute(ctx context.Context, query GetTicketMediaQuery) (*TicketMediaFile, error) {
	if query.ActorRole.IsAdmin() {
		if _, err := uc.ticketRepo.FindByID(ctx, query.TicketID); err != nil {
			return nil, err
		}
	} else {
		if _, err := uc.ticketRepo.FindByIDAndOwner(ctx, query.TicketID, query.ActorID); err != nil {
			return nil, err
		}
	}

	media, err := uc.mediaRepo.FindByID(ctx, query.MediaID)
	if err != nil {
		return nil, err
	}
	if media.TicketID() != query.TicketID {
		return nil, errors.NewNotFoundError("media not found")
	}

	file, err := uc.mediaStore.Open(media.StoragePath())
	if err != nil {
		uc.logger.Errorw("failed to open ticket media", "media_id", media.ID(), "path", media.StoragePath(), "error", err)
		return nil, errors.NewInternalError("failed to open attachment")
	}

	return &TicketMediaFile{
		File:         file,
		OriginalName: media.OriginalName(),
		ContentType:  media.ContentType(),
		SizeBytes:    media.SizeBytes(),
	}, nil
}
