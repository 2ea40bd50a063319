// Package showcase holds the public marketing catalog: the machines shown
// on the institutional site, addressed by slug.
package showcase

import (
	"fmt"
	"time"

	"github.com/giftex-inc/giftex/internal/domain/catalog"
	"github.com/giftex-inc/giftex/internal/shared/slugify"
)

// Specs are the free-text technical highlights shown on the product page.
// All fields are optional.
type Specs struct {
	Capacity   string
	Power      string
	Dimensions string
	Warranty   string
}

// Machine is a showcased product on the public site. It is marketing
// content, independent from the catalog models customers register against.
type Machine struct {
	id               uint
	name             string
	slug             string
	category         catalog.Category
	shortDescription string
	description      string
	specs            Specs
	imagePath        string
	featured         bool
	displayOrder     int
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewMachine(name string, category catalog.Category, shortDescription, description string, specs Specs, imagePath string, featured bool, displayOrder int) (*Machine, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 140 {
		return nil, fmt.Errorf("name exceeds maximum length of 140 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	slug := slugify.Slug(name)
	if slug == "" {
		return nil, fmt.Errorf("name does not produce a valid slug")
	}

	now := time.Now()
	return &Machine{
		name:             name,
		slug:             slug,
		category:         category,
		shortDescription: shortDescription,
		description:      description,
		specs:            specs,
		imagePath:        imagePath,
		featured:         featured,
		displayOrder:     displayOrder,
		active:           true,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructMachine(
	id uint,
	name, slug string,
	category catalog.Category,
	shortDescription, description string,
	specs Specs,
	imagePath string,
	featured bool,
	displayOrder int,
	active bool,
	createdAt, updatedAt time.Time,
) (*Machine, error) {
	if id == 0 {
		return nil, fmt.Errorf("showcase machine ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("slug is required")
	}

	return &Machine{
		id:               id,
		name:             name,
		slug:             slug,
		category:         category,
		shortDescription: shortDescription,
		description:      description,
		specs:            specs,
		imagePath:        imagePath,
		featured:         featured,
		displayOrder:     displayOrder,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (m *Machine) ID() uint                   { return m.id }
func (m *Machine) Name() string               { return m.name }
func (m *Machine) Slug() string               { return m.slug }
func (m *Machine) Category() catalog.Category { return m.category }
func (m *Machine) ShortDescription() string   { return m.shortDescription }
func (m *Machine) Description() string        { return m.description }
func (m *Machine) Specs() Specs               { return m.specs }
func (m *Machine) ImagePath() string          { return m.imagePath }
func (m *Machine) IsFeatured() bool           { return m.featured }
func (m *Machine) DisplayOrder() int          { return m.displayOrder }
func (m *Machine) IsActive() bool             { return m.active }
func (m *Machine) CreatedAt() time.Time       { return m.createdAt }
func (m *Machine) UpdatedAt() time.Time       { return m.updatedAt }

func (m *Machine) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("showcase machine ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("showcase machine ID cannot be zero")
	}
	m.id = id
	return nil
}

// Update renames the machine and regenerates its slug from the new name.
func (m *Machine) Update(name string, category catalog.Category, shortDescription, description string, specs Specs, imagePath string, featured bool, displayOrder int) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid category")
	}
	slug := slugify.Slug(name)
	if slug == "" {
		return fmt.Errorf("name does not produce a valid slug")
	}
	m.name = name
	m.slug = slug
	m.category = category
	m.shortDescription = shortDescription
	m.description = description
	m.specs = specs
	m.imagePath = imagePath
	m.featured = featured
	m.displayOrder = displayOrder
	m.updatedAt = time.Now()
	return nil
}

func (m *Machine) Deactivate() {
	m.active = false
	m.updatedAt = time.Now()
}

func (m *Machine) Activate() {
	m.active = true
	m.updatedAt = time.Now()
}
