package catalog

import (
	"fmt"
	"time"
)

// Manual is a document attached to a machine model. It is backed either by
// an uploaded file (storagePath) or an external URL, never both and never
// neither.
type Manual struct {
	id          uint
	modelID     uint
	title       string
	storagePath string
	externalURL string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewManual(modelID uint, title, storagePath, externalURL string) (*Manual, error) {
	if modelID == 0 {
		return nil, fmt.Errorf("model ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if err := validateManualSource(storagePath, externalURL); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Manual{
		modelID:     modelID,
		title:       title,
		storagePath: storagePath,
		externalURL: externalURL,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructManual(
	id uint,
	modelID uint,
	title, storagePath, externalURL string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Manual, error) {
	if id == 0 {
		return nil, fmt.Errorf("manual ID cannot be zero")
	}
	if err := validateManualSource(storagePath, externalURL); err != nil {
		return nil, err
	}

	return &Manual{
		id:          id,
		modelID:     modelID,
		title:       title,
		storagePath: storagePath,
		externalURL: externalURL,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func validateManualSource(storagePath, externalURL string) error {
	if storagePath == "" && externalURL == "" {
		return fmt.Errorf("manual requires a file or an external URL")
	}
	if storagePath != "" && externalURL != "" {
		return fmt.Errorf("manual cannot have both a file and an external URL")
	}
	return nil
}

func (m *Manual) ID() uint             { return m.id }
func (m *Manual) ModelID() uint        { return m.modelID }
func (m *Manual) Title() string        { return m.title }
func (m *Manual) StoragePath() string  { return m.storagePath }
func (m *Manual) ExternalURL() string  { return m.externalURL }
func (m *Manual) IsActive() bool       { return m.active }
func (m *Manual) CreatedAt() time.Time { return m.createdAt }
func (m *Manual) UpdatedAt() time.Time { return m.updatedAt }

// IsFileBacked reports whether the manual is served from local storage.
func (m *Manual) IsFileBacked() bool {
	return m.storagePath != ""
}

func (m *Manual) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("manual ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("manual ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Manual) Deactivate() {
	m.active = false
	m.updatedAt = time.Now()
}

func (m *Manual) Activate() {
	m.active = true
	m.updatedAt = time.Now()
}
