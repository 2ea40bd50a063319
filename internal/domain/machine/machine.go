// Package machine holds the customer-owned machine aggregate. Every ticket
// and part request is anchored to one of these.
package machine

import (
	"fmt"
	"strings"
	"time"
)

// Machine is a physical unit registered by a customer against a catalog
// model. Ownership scoping in the portal starts here.
type Machine struct {
	id           uint
	ownerID      uint
	modelID      uint
	serialNumber string
	city         string
	uf           string
	purchaseDate *time.Time
	notes        string
	createdAt    time.Time
	updatedAt    time.Time
}

func validateLocation(city, uf string) error {
	if len(city) > 120 {
		return fmt.Errorf("city exceeds maximum length of 120 characters")
	}
	if uf != "" && len(uf) != 2 {
		return fmt.Errorf("uf must be a two-letter state code")
	}
	return nil
}

func NewMachine(ownerID, modelID uint, serialNumber, city, uf string, purchaseDate *time.Time, notes string) (*Machine, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if modelID == 0 {
		return nil, fmt.Errorf("model ID is required")
	}
	if len(serialNumber) > 80 {
		return nil, fmt.Errorf("serial number exceeds maximum length of 80 characters")
	}
	if err := validateLocation(city, uf); err != nil {
		return nil, err
	}
	if purchaseDate != nil && purchaseDate.After(time.Now()) {
		return nil, fmt.Errorf("purchase date cannot be in the future")
	}

	now := time.Now()
	return &Machine{
		ownerID:      ownerID,
		modelID:      modelID,
		serialNumber: serialNumber,
		city:         city,
		uf:           strings.ToUpper(uf),
		purchaseDate: purchaseDate,
		notes:        notes,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructMachine(
	id uint,
	ownerID, modelID uint,
	serialNumber, city, uf string,
	purchaseDate *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Machine, error) {
	if id == 0 {
		return nil, fmt.Errorf("machine ID cannot be zero")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if modelID == 0 {
		return nil, fmt.Errorf("model ID is required")
	}

	return &Machine{
		id:           id,
		ownerID:      ownerID,
		modelID:      modelID,
		serialNumber: serialNumber,
		city:         city,
		uf:           uf,
		purchaseDate: purchaseDate,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (m *Machine) ID() uint                 { return m.id }
func (m *Machine) OwnerID() uint            { return m.ownerID }
func (m *Machine) ModelID() uint            { return m.modelID }
func (m *Machine) SerialNumber() string     { return m.serialNumber }
func (m *Machine) City() string             { return m.city }
func (m *Machine) UF() string               { return m.uf }
func (m *Machine) PurchaseDate() *time.Time { return m.purchaseDate }
func (m *Machine) Notes() string            { return m.notes }
func (m *Machine) CreatedAt() time.Time     { return m.createdAt }
func (m *Machine) UpdatedAt() time.Time     { return m.updatedAt }

// IsOwnedBy reports whether the machine belongs to the given user.
func (m *Machine) IsOwnedBy(userID uint) bool {
	return m.ownerID == userID
}

func (m *Machine) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("machine ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("machine ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Machine) Update(serialNumber, city, uf string, purchaseDate *time.Time, notes string) error {
	if len(serialNumber) > 80 {
		return fmt.Errorf("serial number exceeds maximum length of 80 characters")
	}
	if err := validateLocation(city, uf); err != nil {
		return err
	}
	if purchaseDate != nil && purchaseDate.After(time.Now()) {
		return fmt.Errorf("purchase date cannot be in the future")
	}
	m.serialNumber = serialNumber
	m.city = city
	m.uf = strings.ToUpper(uf)
	m.purchaseDate = purchaseDate
	m.notes = notes
	m.updatedAt = time.Now()
	return nil
}
