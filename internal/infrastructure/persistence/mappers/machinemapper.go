package mappers

import (
	"time"

	"gorm.io/datatypes"

	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
)

// MachineMapper converts customer machines to and from persistence models.
type MachineMapper interface {
	ToModel(m *machine.Machine) *models.MachineModel
	ToDomain(model *models.MachineModel) (*machine.Machine, error)
}

type MachineMapperImpl struct{}

func NewMachineMapper() MachineMapper {
	return &MachineMapperImpl{}
}

func (mp *MachineMapperImpl) ToModel(m *machine.Machine) *models.MachineModel {
	model := &models.MachineModel{
		ID:           m.ID(),
		OwnerID:      m.OwnerID(),
		ModelID:      m.ModelID(),
		SerialNumber: m.SerialNumber(),
		City:         m.City(),
		UF:           m.UF(),
		Notes:        m.Notes(),
		CreatedAt:    m.CreatedAt().UnixMilli(),
		UpdatedAt:    m.UpdatedAt().UnixMilli(),
	}

	if m.PurchaseDate() != nil {
		d := datatypes.Date(*m.PurchaseDate())
		model.PurchaseDate = &d
	}

	return model
}

func (mp *MachineMapperImpl) ToDomain(model *models.MachineModel) (*machine.Machine, error) {
	var purchaseDate *time.Time
	if model.PurchaseDate != nil {
		t := time.Time(*model.PurchaseDate)
		purchaseDate = &t
	}

	return machine.ReconstructMachine(
		model.ID,
		model.OwnerID,
		model.ModelID,
		model.SerialNumber,
		model.City,
		model.UF,
		purchaseDate,
		model.Notes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
