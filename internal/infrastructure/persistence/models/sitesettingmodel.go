package models

import "github.com/giftex-inc/giftex/internal/shared/constants"

// SiteSettingModel is the solo settings row. ID is always 1.
type SiteSettingModel struct {
	ID                 uint   `gorm:"primaryKey"`
	SiteName           string `gorm:"size:120"`
	Tagline            string `gorm:"size:255"`
	WhatsAppNumber     string `gorm:"size:20"`
	ContactPhone       string `gorm:"size:40"`
	ContactEmail       string `gorm:"size:255"`
	AddressText        string `gorm:"type:text"`
	GoogleMapsEmbedURL string `gorm:"size:500"`
	UpdatedAt          int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SiteSettingModel) TableName() string {
	return constants.TableSiteSettings
}
