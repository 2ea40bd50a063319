package usecases

import (
	"context"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/shared/authorization"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

type GetPartRequestQuery struct {
	RequestID uint
	ActorID   uint
	ActorRole authorization.UserRole
}

type PartRequestItem struct {
	ID          uint   `json:"id"`
	PartID      *uint  `json:"part_id,omitempty"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
}

type ShippingDetail struct {
	Name         string `json:"name"`
	CpfCnpj      string `json:"cpf_cnpj,omitempty"`
	Zip          string `json:"zip"`
	Address      string `json:"address"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city"`
	UF           string `json:"uf"`
}

type PartRequestDetailResult struct {
	ID           uint              `json:"id"`
	MachineID    uint              `json:"machine_id"`
	ContactName  string            `json:"contact_name"`
	ContactPhone string            `json:"contact_phone"`
	Shipping     ShippingDetail    `json:"shipping"`
	Notes        string            `json:"notes,omitempty"`
	Status       string            `json:"status"`
	Items        []PartRequestItem `json:"items"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type GetPartRequestUseCase struct {
	requestRepo partrequest.Repository
	logger      logger.Interface
}

func NewGetPartRequestUseCase(requestRepo partrequest.Repository, logger logger.Interface) *GetPartRequestUseCase {
	return &GetPartRequestUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *GetPartRequestUseCase) Execute(ctx context.Context, query GetPartRequestQuery) (*PartRequestDetailResult, error) {
	var (
		request *partrequest.PartRequest
		err     error
	)
	if query.ActorRole.IsAdmin() {
		request, err = uc.requestRepo.FindByID(ctx, query.RequestID)
	} else {
		request, err = uc.requestRepo.FindByIDAndOwner(ctx, query.RequestID, query.ActorID)
	}
	if err != nil {
		return nil, err
	}

	return toPartRequestDetail(request), nil
}

func toPartRequestDetail(request *partrequest.PartRequest) *PartRequestDetailResult {
	items := make([]PartRequestItem, 0, len(request.Items()))
	for _, item := range request.Items() {
		items = append(items, PartRequestItem{
			ID:          item.ID(),
			PartID:      item.PartID(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
		})
	}
	shipping := request.Shipping()
	return &PartRequestDetailResult{
		ID:           request.ID(),
		MachineID:    request.MachineID(),
		ContactName:  request.Contact().Name,
		ContactPhone: request.Contact().Phone,
		Shipping: ShippingDetail{
			Name:         shipping.Name,
			CpfCnpj:      shipping.CpfCnpj,
			Zip:          shipping.Zip,
			Address:      shipping.Address,
			Number:       shipping.Number,
			Complement:   shipping.Complement,
			Neighborhood: shipping.Neighborhood,
			City:         shipping.City,
			UF:           shipping.UF,
		},
		Notes:     request.Notes(),
		Status:    request.Status().String(),
		Items:     items,
		CreatedAt: request.CreatedAt(),
		UpdatedAt: request.UpdatedAt(),
	}
}
