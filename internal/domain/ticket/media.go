package ticket

import (
	"fmt"
	"time"
)

const (
	// MaxMediaPerTicket bounds attachments accepted on ticket creation.
	MaxMediaPerTicket = 5
)

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/quicktime": true,
}

// Media is a photo or video attached when the ticket was opened.
type Media struct {
	id           uint
	ticketID     uint
	storagePath  string
	originalName string
	contentType  string
	sizeBytes    int64
	createdAt    time.Time
}

func NewMedia(ticketID uint, storagePath, originalName, contentType string, sizeBytes int64) (*Media, error) {
	if storagePath == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	if !allowedMediaTypes[contentType] {
		return nil, fmt.Errorf("unsupported media type: %s", contentType)
	}
	if sizeBytes <= 0 {
		return nil, fmt.Errorf("media size must be positive")
	}

	return &Media{
		ticketID:     ticketID,
		storagePath:  storagePath,
		originalName: originalName,
		contentType:  contentType,
		sizeBytes:    sizeBytes,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructMedia(
	id uint,
	ticketID uint,
	storagePath, originalName, contentType string,
	sizeBytes int64,
	createdAt time.Time,
) (*Media, error) {
	if id == 0 {
		return nil, fmt.Errorf("media ID cannot be zero")
	}

	return &Media{
		id:           id,
		ticketID:     ticketID,
		storagePath:  storagePath,
		originalName: originalName,
		contentType:  contentType,
		sizeBytes:    sizeBytes,
		createdAt:    createdAt,
	}, nil
}

// IsAllowedMediaType reports whether the given MIME type is accepted as a
// ticket attachment.
func IsAllowedMediaType(contentType string) bool {
	return allowedMediaTypes[contentType]
}

func (m *Media) ID() uint             { return m.id }
func (m *Media) TicketID() uint       { return m.ticketID }
func (m *Media) StoragePath() string  { return m.storagePath }
func (m *Media) OriginalName() string { return m.originalName }
func (m *Media) ContentType() string  { return m.contentType }
func (m *Media) SizeBytes() int64     { return m.sizeBytes }
func (m *Media) CreatedAt() time.Time { return m.createdAt }

func (m *Media) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("media ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("media ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Media) SetTicketID(ticketID uint) error {
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	m.ticketID = ticketID
	return nil
}
