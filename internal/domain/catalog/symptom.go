package catalog

import (
	"fmt"
	"time"
)

// Symptom is a selectable problem description offered when a customer opens
// a ticket. Symptoms are grouped by the same categories as machine models.
type Symptom struct {
	id        uint
	name      string
	category  Category
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewSymptom(name string, category Category) (*Symptom, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 160 {
		return nil, fmt.Errorf("name exceeds maximum length of 160 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	now := time.Now()
	return &Symptom{
		name:      name,
		category:  category,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSymptom(
	id uint,
	name string,
	category Category,
	active bool,
	createdAt, updatedAt time.Time,
) (*Symptom, error) {
	if id == 0 {
		return nil, fmt.Errorf("symptom ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}

	return &Symptom{
		id:        id,
		name:      name,
		category:  category,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Symptom) ID() uint             { return s.id }
func (s *Symptom) Name() string         { return s.name }
func (s *Symptom) Category() Category   { return s.category }
func (s *Symptom) IsActive() bool       { return s.active }
func (s *Symptom) CreatedAt() time.Time { return s.createdAt }
func (s *Symptom) UpdatedAt() time.Time { return s.updatedAt }

func (s *Symptom) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("symptom ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("symptom ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Symptom) Update(name string, category Category) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	s.name = name
	s.category = category
	s.updatedAt = time.Now()
	return nil
}

func (s *Symptom) Deactivate() {
	s.active = false
	s.updatedAt = time.Now()
}

func (s *Symptom) Activate() {
	s.active = true
	s.updatedAt = time.Now()
}
