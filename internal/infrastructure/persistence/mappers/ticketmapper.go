package mappers

import (
	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/ticket"
	vo "github.com/giftex-inc/giftex/internal/domain/ticket/valueobjects"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket aggregate entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	MediaToModel(m *ticket.Media) *models.TicketMediaModel
	MediaToDomain(model *models.TicketMediaModel) (*ticket.Media, error)
	MessageToModel(m *ticket.Message) *models.TicketMessageModel
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		MachineID:   t.MachineID(),
		OpenedByID:  t.OpenedByID(),
		Category:    t.Category().String(),
		SymptomID:   t.SymptomID(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, err := catalog.NewCategory(model.Category)
	if err != nil {
		return nil, err
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}
	priority, err := vo.NewTicketPriority(model.Priority)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.MachineID,
		model.OpenedByID,
		category,
		model.SymptomID,
		model.Description,
		status,
		priority,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) MediaToModel(media *ticket.Media) *models.TicketMediaModel {
	return &models.TicketMediaModel{
		ID:           media.ID(),
		TicketID:     media.TicketID(),
		StoragePath:  media.StoragePath(),
		OriginalName: media.OriginalName(),
		ContentType:  media.ContentType(),
		SizeBytes:    media.SizeBytes(),
		CreatedAt:    media.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MediaToDomain(model *models.TicketMediaModel) (*ticket.Media, error) {
	return ticket.ReconstructMedia(
		model.ID,
		model.TicketID,
		model.StoragePath,
		model.OriginalName,
		model.ContentType,
		model.SizeBytes,
		millisToTime(model.CreatedAt),
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		SenderID:   msg.SenderID(),
		SenderRole: msg.SenderRole().String(),
		Body:       msg.Body(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	senderRole, err := vo.NewSenderRole(model.SenderRole)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.SenderID,
		senderRole,
		model.Body,
		millisToTime(model.CreatedAt),
	)
}
