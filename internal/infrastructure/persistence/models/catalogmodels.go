package models

import "github.com/giftex-inc/giftex/internal/shared/constants"

// MachineModelModel is the persistence row for a catalog machine model. The
// doubled name keeps the XModel suffix convention while the entity itself
// is called MachineModel.
type MachineModelModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:120;not null"`
	Category    string `gorm:"size:20;not null;index"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;default:true;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MachineModelModel) TableName() string {
	return constants.TableMachineModels
}

type SymptomModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:160;not null"`
	Category  string `gorm:"size:20;not null;index"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SymptomModel) TableName() string {
	return constants.TableSymptoms
}

type PartModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:160;not null"`
	Code        string `gorm:"size:60;not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Active      bool   `gorm:"not null;default:true;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (PartModel) TableName() string {
	return constants.TableParts
}

// PartCompatibleModelModel is the join row between parts and catalog
// machine models.
type PartCompatibleModelModel struct {
	PartID  uint `gorm:"primaryKey;autoIncrement:false"`
	ModelID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (PartCompatibleModelModel) TableName() string {
	return constants.TablePartCompat
}

type ManualModel struct {
	ID          uint   `gorm:"primaryKey"`
	ModelID     uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	StoragePath string `gorm:"size:255"`
	ExternalURL string `gorm:"size:500"`
	Active      bool   `gorm:"not null;default:true;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ManualModel) TableName() string {
	return constants.TableManuals
}
