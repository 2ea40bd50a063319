package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/domain/machine"
	"github.com/giftex-inc/giftex/internal/domain/partrequest"
	"github.com/giftex-inc/giftex/internal/shared/errors"
	"github.com/giftex-inc/giftex/internal/shared/logger"
)

// ItemInput is one requested part line from the form. PartID nil means the
// customer typed a free-text description instead of picking a part.
type ItemInput struct {
	PartID      *uint
	Description string
	Quantity    int
}

// ShippingInput carries the delivery address from the form.
type ShippingInput struct {
	Name         string
	CpfCnpj      string
	Zip          string
	Address      string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	UF           string
}

type CreatePartRequestCommand struct {
	OwnerID      uint
	MachineID    uint
	ContactName  string
	ContactPhone string
	Shipping     ShippingInput
	Notes        string
	Items        []ItemInput
}

type CreatePartRequestResult struct {
	RequestID uint
	Status    string
	CreatedAt time.Time
}

type CreatePartRequestUseCase struct {
	requestRepo partrequest.Repository
	machineRepo machine.Repository
	partRepo    catalog.PartRepository
	logger      logger.Interface
}

func NewCreatePartRequestUseCase(
	requestRepo partrequest.Repository,
	machineRepo machine.Repository,
	partRepo catalog.PartRepository,
	logger logger.Interface,
) *CreatePartRequestUseCase {
	return &CreatePartRequestUseCase{
		requestRepo: requestRepo,
		machineRepo: machineRepo,
		partRepo:    partRepo,
		logger:      logger,
	}
}

func (uc *CreatePartRequestUseCase) Execute(ctx context.Context, cmd CreatePartRequestCommand) (*CreatePartRequestResult, error) {
	m, err := uc.machineRepo.FindByIDAndOwner(ctx, cmd.MachineID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	// Bad item lines never block the request header: the back office
	// follows up over the phone anyway, so unknown, inactive, incompatible
	// or malformed lines are dropped and the header still persists.
	items := make([]partrequest.Item, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		if input.PartID != nil {
			part, err := uc.partRepo.FindByID(ctx, *input.PartID)
			if err != nil {
				if errors.IsNotFoundError(err) {
					uc.logger.Warnw("dropping part request item: part not found",
						"part_id", *input.PartID, "machine_id", cmd.MachineID)
					continue
				}
				return nil, err
			}
			if !part.IsActive() || !part.IsCompatibleWith(m.ModelID()) {
				uc.logger.Warnw("dropping part request item: part not selectable",
					"part_id", *input.PartID, "machine_id", cmd.MachineID)
				continue
			}
		}
		item, err := partrequest.NewItem(input.PartID, input.Description, input.Quantity)
		if err != nil {
			uc.logger.Warnw("dropping malformed part request item", "error", err)
			continue
		}
		items = append(items, item)
	}

	contact := partrequest.Contact{
		Name:  cmd.ContactName,
		Phone: cmd.ContactPhone,
	}
	shipping := partrequest.ShippingAddress{
		Name:         cmd.Shipping.Name,
		CpfCnpj:      cmd.Shipping.CpfCnpj,
		Zip:          cmd.Shipping.Zip,
		Address:      cmd.Shipping.Address,
		Number:       cmd.Shipping.Number,
		Complement:   cmd.Shipping.Complement,
		Neighborhood: cmd.Shipping.Neighborhood,
		City:         cmd.Shipping.City,
		UF:           strings.ToUpper(cmd.Shipping.UF),
	}

	request, err := partrequest.NewPartRequest(cmd.MachineID, cmd.OwnerID, contact, shipping, cmd.Notes, items)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		uc.logger.Errorw("failed to create part request", "machine_id", cmd.MachineID, "error", err)
		return nil, err
	}

	uc.logger.Infow("part request created",
		"request_id", request.ID(),
		"machine_id", cmd.MachineID,
		"owner_id", cmd.OwnerID,
		"item_count", len(items))

	return &CreatePartRequestResult{
		RequestID: request.ID(),
		Status:    request.Status().String(),
		CreatedAt: request.CreatedAt(),
	}, nil
}
