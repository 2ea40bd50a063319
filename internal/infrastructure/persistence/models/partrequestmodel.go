package models

import "github.com/giftex-inc/giftex/internal/shared/constants"

type PartRequestModel struct {
	ID                   uint   `gorm:"primaryKey"`
	MachineID            uint   `gorm:"not null;index"`
	OpenedBy             uint   `gorm:"not null;index"`
	ContactName          string `gorm:"size:120;not null"`
	ContactPhone         string `gorm:"size:40;not null"`
	ShippingName         string `gorm:"size:120;not null"`
	ShippingCpfCnpj      string `gorm:"size:40"`
	ShippingZip          string `gorm:"size:20;not null"`
	ShippingAddress      string `gorm:"size:160;not null"`
	ShippingNumber       string `gorm:"size:20"`
	ShippingComplement   string `gorm:"size:80"`
	ShippingNeighborhood string `gorm:"size:80"`
	ShippingCity         string `gorm:"size:80;not null"`
	ShippingUF           string `gorm:"size:2;not null"`
	Notes                string `gorm:"type:text"`
	Status               string `gorm:"size:20;not null;index"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PartRequestModel) TableName() string {
	return constants.TablePartRequests
}

type PartRequestItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	RequestID   uint   `gorm:"not null;index"`
	PartID      *uint  `gorm:"index"`
	Description string `gorm:"size:255"`
	Quantity    int    `gorm:"not null;default:1"`
}

func (PartRequestItemModel) TableName() string {
	return constants.TablePartRequestItems
}
