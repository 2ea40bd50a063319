package models

import (
	"gorm.io/datatypes"

	"github.com/giftex-inc/giftex/internal/shared/constants"
)

// MachineModel is the persistence row for a customer-registered machine.
type MachineModel struct {
	ID           uint            `gorm:"primaryKey"`
	OwnerID      uint            `gorm:"not null;index"`
	ModelID      uint            `gorm:"not null;index"`
	SerialNumber string          `gorm:"size:80"`
	City         string          `gorm:"size:120"`
	UF           string          `gorm:"size:2"`
	PurchaseDate *datatypes.Date `gorm:"type:date"`
	Notes        string          `gorm:"type:text"`
	CreatedAt    int64           `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64           `gorm:"autoUpdateTime:milli;not null"`
}

func (MachineModel) TableName() string {
	return constants.TableMachines
}
