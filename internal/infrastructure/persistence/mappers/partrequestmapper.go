package mappers

import (
	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/infrastructure/persistence/models"
)

// PartRequestMapper converts part requests and their items to and from
// persistence models.
type PartRequestMapper interface {
	ToModel(r *partrequest.PartRequest) (*models.PartRequestModel, []models.PartRequestItemModel)
	ToDomain(model *models.PartRequestModel, itemModels []models.PartRequestItemModel) (*partrequest.PartRequest, error)
}

type PartRequestMapperImpl struct{}

func NewPartRequestMapper() PartRequestMapper {
	return &PartRequestMapperImpl{}
}

func (m *PartRequestMapperImpl) ToModel(r *partrequest.PartRequest) (*models.PartRequestModel, []models.PartRequestItemModel) {
	contact := r.Contact()
	shipping := r.Shipping()
	model := &models.PartRequestModel{
		ID:                   r.ID(),
		MachineID:            r.MachineID(),
		OpenedBy:             r.OpenedBy(),
		ContactName:          contact.Name,
		ContactPhone:         contact.Phone,
		ShippingName:         shipping.Name,
		ShippingCpfCnpj:      shipping.CpfCnpj,
		ShippingZip:          shipping.Zip,
		ShippingAddress:      shipping.Address,
		ShippingNumber:       shipping.Number,
		ShippingComplement:   shipping.Complement,
		ShippingNeighborhood: shipping.Neighborhood,
		ShippingCity:         shipping.City,
		ShippingUF:           shipping.UF,
		Notes:                r.Notes(),
		Status:               r.Status().String(),
		CreatedAt:            r.CreatedAt().UnixMilli(),
		UpdatedAt:            r.UpdatedAt().UnixMilli(),
	}

	items := r.Items()
	itemModels := make([]models.PartRequestItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, models.PartRequestItemModel{
			ID:          item.ID(),
			RequestID:   r.ID(),
			PartID:      item.PartID(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
		})
	}

	return model, itemModels
}

func (m *PartRequestMapperImpl) ToDomain(model *models.PartRequestModel, itemModels []models.PartRequestItemModel) (*partrequest.PartRequest, error) {
	status, err := partrequest.NewStatus(model.Status)
	if err != nil {
		return nil, err
	}

	items := make([]partrequest.Item, 0, len(itemModels))
	for _, im := range itemModels {
		item, err := partrequest.ReconstructItem(im.ID, im.PartID, im.Description, im.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return partrequest.ReconstructPartRequest(
		model.ID,
		model.MachineID,
		model.OpenedBy,
		partrequest.Contact{
			Name:  model.ContactName,
			Phone: model.ContactPhone,
		},
		partrequest.ShippingAddress{
			Name:         model.ShippingName,
			CpfCnpj:      model.ShippingCpfCnpj,
			Zip:          model.ShippingZip,
			Address:      model.ShippingAddress,
			Number:       model.ShippingNumber,
			Complement:   model.ShippingComplement,
			Neighborhood: model.ShippingNeighborhood,
			City:         model.ShippingCity,
			UF:           model.ShippingUF,
		},
		model.Notes,
		status,
		items,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
