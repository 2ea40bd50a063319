package catalog

import (
	"fmt"
	"time"
)

// Part is a spare part sold for one or more machine models. Compatibility
// drives which parts a customer can pick when opening a part request.
type Part struct {
	id                 uint
	name               string
	code               string
	description        string
	active             bool
	compatibleModelIDs []uint
	createdAt          time.Time
	updatedAt          time.Time
}

func NewPart(name, code, description string, compatibleModelIDs []uint) (*Part, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 160 {
		return nil, fmt.Errorf("name exceeds maximum length of 160 characters")
	}
	if err := validatePartCode(code); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Part{
		name:               name,
		code:               code,
		description:        description,
		active:             true,
		compatibleModelIDs: dedupeIDs(compatibleModelIDs),
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructPart(
	id uint,
	name, code, description string,
	active bool,
	compatibleModelIDs []uint,
	createdAt, updatedAt time.Time,
) (*Part, error) {
	if id == 0 {
		return nil, fmt.Errorf("part ID cannot be zero")
	}

	return &Part{
		id:                 id,
		name:               name,
		code:               code,
		description:        description,
		active:             active,
		compatibleModelIDs: dedupeIDs(compatibleModelIDs),
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (p *Part) ID() uint             { return p.id }
func (p *Part) Name() string         { return p.name }
func (p *Part) Code() string         { return p.code }
func (p *Part) Description() string  { return p.description }
func (p *Part) IsActive() bool       { return p.active }
func (p *Part) CreatedAt() time.Time { return p.createdAt }
func (p *Part) UpdatedAt() time.Time { return p.updatedAt }

// CompatibleModelIDs returns a copy so callers cannot mutate internal state.
func (p *Part) CompatibleModelIDs() []uint {
	ids := make([]uint, len(p.compatibleModelIDs))
	copy(ids, p.compatibleModelIDs)
	return ids
}

func (p *Part) IsCompatibleWith(modelID uint) bool {
	for _, id := range p.compatibleModelIDs {
		if id == modelID {
			return true
		}
	}
	return false
}

func (p *Part) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("part ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Part) Update(name, code, description string, compatibleModelIDs []uint) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if err := validatePartCode(code); err != nil {
		return err
	}
	p.name = name
	p.code = code
	p.description = description
	p.compatibleModelIDs = dedupeIDs(compatibleModelIDs)
	p.updatedAt = time.Now()
	return nil
}

func (p *Part) Deactivate() {
	p.active = false
	p.updatedAt = time.Now()
}

func (p *Part) Activate() {
	p.active = true
	p.updatedAt = time.Now()
}

// Codes identify parts on quotes, so they are mandatory and unique. The
// uniqueness itself is enforced by the database index.
func validatePartCode(code string) error {
	if len(code) == 0 {
		return fmt.Errorf("code is required")
	}
	if len(code) > 60 {
		return fmt.Errorf("code exceeds maximum length of 60 characters")
	}
	return nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
