package usecases

import (
	"context"
	"io"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/id"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

const ticketMediaSubdir = "tickets"

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MediaStorage persists uploaded files and can undo a write when the
// surrounding transaction fails.
type MediaStorage interface {
	Save(subdir, prefix, originalName string, r io.Reader) (string, error)
	Remove(relPath string) error
}

// MediaUpload is one attachment received with the ticket form.
type MediaUpload struct {
	OriginalName string
	ContentType  string
	SizeBytes    int64
	Reader       io.Reader
}

type CreateTicketCommand struct {
	OwnerID     uint
	MachineID   uint
	Category    string
	SymptomID   *uint
	Description string
	// Priority is optional; an empty value falls back to MEDIUM.
	Priority string
	Media    []MediaUpload
}

type CreateTicketResult struct {
	TicketID  uint
	Status    string
	Priority  string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	mediaRepo   ticket.MediaRepository
	machineRepo machine.Repository
	symptomRepo catalog.SymptomRepository
	txManager   TransactionManager
	mediaStore  MediaStorage
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	mediaRepo ticket.MediaRepository,
	machineRepo machine.Repository,
	symptomRepo catalog.SymptomRepository,
	txManager TransactionManager,
	mediaStore MediaStorage,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		mediaRepo:   mediaRepo,
		machineRepo: machineRepo,
		symptomRepo: symptomRepo,
		txManager:   txManager,
		mediaStore:  mediaStore,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	category, err := catalog.NewCategory(cmd.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority := valueobjects.PriorityMedium
	if cmd.Priority != "" {
		priority, err = valueobjects.NewTicketPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if len(cmd.Media) > ticket.MaxMediaPerTicket {
		return nil, errors.NewValidationError("too many attachments")
	}
	for _, upload := range cmd.Media {
		if !ticket.IsAllowedMediaType(upload.ContentType) {
			return nil, errors.NewValidationError("unsupported media type: " + upload.ContentType)
		}
	}

	// Ownership check doubles as existence check.
	if _, err := uc.machineRepo.FindByIDAndOwner(ctx, cmd.MachineID, cmd.OwnerID); err != nil {
		return nil, err
	}

	if cmd.SymptomID != nil {
		symptom, err := uc.symptomRepo.FindByID(ctx, *cmd.SymptomID)
		if err != nil {
			return nil, err
		}
		if !symptom.IsActive() {
			return nil, errors.NewValidationError("symptom is not available")
		}
		if symptom.Category() != category {
			return nil, errors.NewValidationError("symptom does not belong to the selected category")
		}
	}

	newTicket, err := ticket.NewTicket(cmd.MachineID, cmd.OwnerID, category, cmd.SymptomID, cmd.Description, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Files land on disk before the transaction so a rollback only has to
	// unlink them.
	savedPaths := make([]string, 0, len(cmd.Media))
	mediaList := make([]*ticket.Media, 0, len(cmd.Media))
	cleanup := func() {
		for _, p := range savedPaths {
			if err := uc.mediaStore.Remove(p); err != nil {
				uc.logger.Warnw("failed to remove orphaned media file", "path", p, "error", err)
			}
		}
	}

	for _, upload := range cmd.Media {
		path, err := uc.mediaStore.Save(ticketMediaSubdir, id.PrefixTicketMedia, upload.OriginalName, upload.Reader)
		if err != nil {
			cleanup()
			uc.logger.Errorw("failed to store ticket media", "error", err)
			return nil, errors.NewInternalError("failed to store attachment")
		}
		savedPaths = append(savedPaths, path)

		media, err := ticket.NewMedia(0, path, upload.OriginalName, upload.ContentType, upload.SizeBytes)
		if err != nil {
			cleanup()
			return nil, errors.NewValidationError(err.Error())
		}
		mediaList = append(mediaList, media)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return err
		}
		for _, media := range mediaList {
			if err := media.SetTicketID(newTicket.ID()); err != nil {
				return err
			}
			if err := uc.mediaRepo.Create(txCtx, media); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		cleanup()
		uc.logger.Errorw("failed to create ticket", "machine_id", cmd.MachineID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"machine_id", cmd.MachineID,
		"owner_id", cmd.OwnerID,
		"media_count", len(mediaList))

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		Priority:  newTicket.Priority().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
