// Package sitesetting holds the single-row site settings aggregate. Staff
// overrides live in the database; empty fields fall back to configuration
// defaults at read time.
package sitesetting

import (
	"fmt"
	"time"
)

// SoloID is the fixed primary key of the single settings row.
const SoloID uint = 1

// SiteSetting stores staff-editable site content. Empty string means "use
// the configured default" for that field.
type SiteSetting struct {
	id                 uint
	siteName           string
	tagline            string
	whatsAppNumber     string
	contactPhone       string
	contactEmail       string
	addressText        string
	googleMapsEmbedURL string
	updatedAt          time.Time
}

func NewSiteSetting() *SiteSetting {
	return &SiteSetting{
		id:        SoloID,
		updatedAt: time.Now(),
	}
}

func ReconstructSiteSetting(
	id uint,
	siteName, tagline, whatsAppNumber, contactPhone, contactEmail, addressText, googleMapsEmbedURL string,
	updatedAt time.Time,
) (*SiteSetting, error) {
	if id != SoloID {
		return nil, fmt.Errorf("site settings must use the solo row ID %d", SoloID)
	}

	return &SiteSetting{
		id:                 id,
		siteName:           siteName,
		tagline:            tagline,
		whatsAppNumber:     whatsAppNumber,
		contactPhone:       contactPhone,
		contactEmail:       contactEmail,
		addressText:        addressText,
		googleMapsEmbedURL: googleMapsEmbedURL,
		updatedAt:          updatedAt,
	}, nil
}

func (s *SiteSetting) ID() uint                   { return s.id }
func (s *SiteSetting) SiteName() string           { return s.siteName }
func (s *SiteSetting) Tagline() string            { return s.tagline }
func (s *SiteSetting) WhatsAppNumber() string     { return s.whatsAppNumber }
func (s *SiteSetting) ContactPhone() string       { return s.contactPhone }
func (s *SiteSetting) ContactEmail() string       { return s.contactEmail }
func (s *SiteSetting) AddressText() string        { return s.addressText }
func (s *SiteSetting) GoogleMapsEmbedURL() string { return s.googleMapsEmbedURL }
func (s *SiteSetting) UpdatedAt() time.Time       { return s.updatedAt }

func (s *SiteSetting) Update(siteName, tagline, whatsAppNumber, contactPhone, contactEmail, addressText, googleMapsEmbedURL string) {
	s.siteName = siteName
	s.tagline = tagline
	s.whatsAppNumber = whatsAppNumber
	s.contactPhone = contactPhone
	s.contactEmail = contactEmail
	s.addressText = addressText
	s.googleMapsEmbedURL = googleMapsEmbedURL
	s.updatedAt = time.Now()
}

// Defaults carries the configured fallback values applied when a field is
// empty in the database row.
type Defaults struct {
	SiteName           string
	Tagline            string
	WhatsAppNumber     string
	ContactPhone       string
	ContactEmail       string
	AddressText        string
	GoogleMapsEmbedURL string
}

// Resolved is the merged view the site renders: row values where present,
// defaults elsewhere.
type Resolved struct {
	SiteName           string
	Tagline            string
	WhatsAppNumber     string
	ContactPhone       string
	ContactEmail       string
	AddressText        string
	GoogleMapsEmbedURL string
}

// Resolve merges the row with defaults field by field.
func (s *SiteSetting) Resolve(defaults Defaults) Resolved {
	return Resolved{
		SiteName:           fallback(s.siteName, defaults.SiteName),
		Tagline:            fallback(s.tagline, defaults.Tagline),
		WhatsAppNumber:     fallback(s.whatsAppNumber, defaults.WhatsAppNumber),
		ContactPhone:       fallback(s.contactPhone, defaults.ContactPhone),
		ContactEmail:       fallback(s.contactEmail, defaults.ContactEmail),
		AddressText:        fallback(s.addressText, defaults.AddressText),
		GoogleMapsEmbedURL: fallback(s.googleMapsEmbedURL, defaults.GoogleMapsEmbedURL),
	}
}

// ResolveDefaults is the merged view when no settings row exists yet.
func ResolveDefaults(defaults Defaults) Resolved {
	return Resolved(defaults)
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
