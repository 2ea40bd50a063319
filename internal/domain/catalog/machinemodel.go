// Package catalog holds the staff-maintained reference data: machine models,
// symptoms, parts and manuals. Customer-facing workflows read it, never
// write it.
package catalog

import (
	"fmt"
	"time"
)

// MachineModel is a catalog entry describing a model the factory sells.
// Customer machines, manuals and part compatibility all reference it.
type MachineModel struct {
	id          uint
	name        string
	category    Category
	description string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMachineModel(name string, category Category, description string) (*MachineModel, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 120 {
		return nil, fmt.Errorf("name exceeds maximum length of 120 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	now := time.Now()
	return &MachineModel{
		name:        name,
		category:    category,
		description: description,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructMachineModel(
	id uint,
	name string,
	category Category,
	description string,
	active bool,
	createdAt, updatedAt time.Time,
) (*MachineModel, error) {
	if id == 0 {
		return nil, fmt.Errorf("machine model ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	return &MachineModel{
		id:          id,
		name:        name,
		category:    category,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (m *MachineModel) ID() uint             { return m.id }
func (m *MachineModel) Name() string         { return m.name }
func (m *MachineModel) Category() Category   { return m.category }
func (m *MachineModel) Description() string  { return m.description }
func (m *MachineModel) IsActive() bool       { return m.active }
func (m *MachineModel) CreatedAt() time.Time { return m.createdAt }
func (m *MachineModel) UpdatedAt() time.Time { return m.updatedAt }

func (m *MachineModel) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("machine model ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("machine model ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *MachineModel) Update(name string, category Category, description string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	m.name = name
	m.category = category
	m.description = description
	m.updatedAt = time.Now()
	return nil
}

func (m *MachineModel) Deactivate() {
	m.active = false
	m.updatedAt = time.Now()
}

func (m *MachineModel) Activate() {
	m.active = true
	m.updatedAt = time.Now()
}
