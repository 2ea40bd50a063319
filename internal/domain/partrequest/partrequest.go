package partrequest

import (
	"fmt"
	"time"
)

// Contact is who GIFT should call back about the request.
type Contact struct {
	Name  string
	Phone string
}

// ShippingAddress is where the quoted parts will be shipped. CpfCnpj,
// Number, Complement and Neighborhood are optional.
type ShippingAddress struct {
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

func (s ShippingAddress) validate() error {
	if s.Name == "" {
		return fmt.Errorf("shipping name is required")
	}
	if s.Zip == "" {
		return fmt.Errorf("shipping zip is required")
	}
	if s.Address == "" {
		return fmt.Errorf("shipping address is required")
	}
	if s.City == "" {
		return fmt.Errorf("shipping city is required")
	}
	if len(s.UF) != 2 {
		return fmt.Errorf("shipping uf must be a two-letter state code")
	}
	return nil
}

// PartRequest is a customer request for spare parts for one of their
// machines. Items are fixed at creation time.
type PartRequest struct {
	id        uint
	machineID uint
	openedBy  uint
	contact   Contact
	shipping  ShippingAddress
	notes     string
	status    Status
	items     []Item
	createdAt time.Time
	updatedAt time.Time
}

// Item is one requested part line. PartID is nil for free-text requests
// where the customer could not identify the part.
type Item struct {
	id          uint
	partID      *uint
	description string
	quantity    int
}

func NewItem(partID *uint, description string, quantity int) (Item, error) {
	if partID == nil && description == "" {
		return Item{}, fmt.Errorf("item requires a part or a description")
	}
	if partID != nil && *partID == 0 {
		return Item{}, fmt.Errorf("part ID cannot be zero")
	}
	if quantity < 1 {
		return Item{}, fmt.Errorf("quantity must be at least 1")
	}

	return Item{
		partID:      partID,
		description: description,
		quantity:    quantity,
	}, nil
}

func ReconstructItem(id uint, partID *uint, description string, quantity int) (Item, error) {
	if id == 0 {
		return Item{}, fmt.Errorf("item ID cannot be zero")
	}
	return Item{
		id:          id,
		partID:      partID,
		description: description,
		quantity:    quantity,
	}, nil
}

func (i Item) ID() uint            { return i.id }
func (i Item) PartID() *uint       { return i.partID }
func (i Item) Description() string { return i.description }
func (i Item) Quantity() int       { return i.quantity }

func NewPartRequest(machineID, openedBy uint, contact Contact, shipping ShippingAddress, notes string, items []Item) (*PartRequest, error) {
	if machineID == 0 {
		return nil, fmt.Errorf("machine ID is required")
	}
	if openedBy == 0 {
		return nil, fmt.Errorf("opener ID is required")
	}
	if contact.Name == "" {
		return nil, fmt.Errorf("contact name is required")
	}
	if contact.Phone == "" {
		return nil, fmt.Errorf("contact phone is required")
	}
	if err := shipping.validate(); err != nil {
		return nil, err
	}

	// An empty item list is fine: the request header alone is enough for
	// the back office to start a quote conversation.
	now := time.Now()
	return &PartRequest{
		machineID: machineID,
		openedBy:  openedBy,
		contact:   contact,
		shipping:  shipping,
		notes:     notes,
		status:    StatusOpen,
		items:     items,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPartRequest(
	id uint,
	machineID, openedBy uint,
	contact Contact,
	shipping ShippingAddress,
	notes string,
	status Status,
	items []Item,
	createdAt, updatedAt time.Time,
) (*PartRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("part request ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid part request status")
	}

	return &PartRequest{
		id:        id,
		machineID: machineID,
		openedBy:  openedBy,
		contact:   contact,
		shipping:  shipping,
		notes:     notes,
		status:    status,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *PartRequest) ID() uint                  { return r.id }
func (r *PartRequest) MachineID() uint           { return r.machineID }
func (r *PartRequest) OpenedBy() uint            { return r.openedBy }
func (r *PartRequest) Contact() Contact          { return r.contact }
func (r *PartRequest) Shipping() ShippingAddress { return r.shipping }
func (r *PartRequest) Notes() string             { return r.notes }
func (r *PartRequest) Status() Status            { return r.status }
func (r *PartRequest) CreatedAt() time.Time      { return r.createdAt }
func (r *PartRequest) UpdatedAt() time.Time      { return r.updatedAt }

// Items returns a copy of the item list.
func (r *PartRequest) Items() []Item {
	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

func (r *PartRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("part request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("part request ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *PartRequest) ChangeStatus(target Status) error {
	if !r.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition part request from %s to %s", r.status, target)
	}
	r.status = target
	r.updatedAt = time.Now()
	return nil
}
