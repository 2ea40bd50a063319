package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/giftex-inc/giftex/internal/domain/ticket"
	"github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/mappers"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
	"github.com/giftex-inc/giftex/internal/shared/constants"
	db "github.com/giftex-inc/giftex/internal/shared/db"
	appErrors "github.com/giftex-inc/giftex/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("status", "priority", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByIDAndOwner joins through machines so a ticket on someone else's
// machine is a plain miss.
func (r *TicketRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TableTickets)).
		Where(constants.TableTickets+".id = ? AND m.owner_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	base := tx.
		Model(&models.TicketModel{}).
		Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TableTickets)).
		Where("m.owner_id = ?", ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	if err := base.
		Order(constants.TableTickets + ".created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(rows, total)
}

func (r *TicketRepository) List(ctx context.Context, filters ticket.ListFilters, offset, limit int) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filters.Status != nil {
		query = query.Where(constants.TableTickets+".status = ?", filters.Status.String())
	}
	if filters.Priority != nil {
		query = query.Where(constants.TableTickets+".priority = ?", filters.Priority.String())
	}
	if filters.OwnerID != nil {
		query = query.
			Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TableTickets)).
			Where("m.owner_id = ?", *filters.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	if err := query.
		Order(constants.TableTickets + ".created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(rows, total)
}

func (r *TicketRepository) CountByOwnerAndStatuses(ctx context.Context, ownerID uint, statuses []valueobjects.TicketStatus) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Model(&models.TicketModel{}).
		Joins(fmt.Sprintf("JOIN %s m ON m.id = %s.machine_id", constants.TableMachines, constants.TableTickets)).
		Where("m.owner_id = ?", ownerID)

	if len(statuses) > 0 {
		query = query.Where(constants.TableTickets+".status IN ?", statusStrings(statuses))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) CountByStatuses(ctx context.Context, statuses []valueobjects.TicketStatus) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) toDomainList(rows []models.TicketModel, total int64) ([]*ticket.Ticket, int64, error) {
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func statusStrings(statuses []valueobjects.TicketStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}

type TicketMediaRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketMediaRepository(database *gorm.DB) *TicketMediaRepository {
	return &TicketMediaRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketMediaRepository) Create(ctx context.Context, media *ticket.Media) error {
	model := r.mapper.MediaToModel(media)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket media: %w", err)
	}

	return media.SetID(model.ID)
}

func (r *TicketMediaRepository) FindByID(ctx context.Context, id uint) (*ticket.Media, error) {
	var model models.TicketMediaModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewNotFoundError("ticket media not found")
		}
		return nil, fmt.Errorf("failed to find ticket media: %w", err)
	}

	return r.mapper.MediaToDomain(&model)
}

// ListByTicket returns attachments newest first; the detail view leads with
// the latest upload. Timestamps tie within one submission, so id breaks the
// tie.
func (r *TicketMediaRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketMediaModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket media: %w", err)
	}

	result := make([]*ticket.Media, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.MediaToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, nil
}

func (r *TicketMediaRepository) CountByTicket(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketMediaModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ticket media: %w", err)
	}

	return count, nil
}

type TicketMessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketMessageRepository(database *gorm.DB) *TicketMessageRepository {
	return &TicketMessageRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketMessageRepository) Create(ctx context.Context, message *ticket.Message) error {
	model := r.mapper.MessageToModel(message)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket message: %w", err)
	}

	return message.SetID(model.ID)
}

func (r *TicketMessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketMessageModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket messages: %w", err)
	}

	result := make([]*ticket.Message, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.MessageToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, nil
}
