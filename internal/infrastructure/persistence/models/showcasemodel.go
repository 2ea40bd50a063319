package models

import "github.com/giftex-inc/giftex/internal/shared/constants"

type ShowcaseMachineModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:140;not null"`
	Slug             string `gorm:"uniqueIndex;size:160;not null"`
	Category         string `gorm:"size:20;not null;index"`
	ShortDescription string `gorm:"size:255"`
	Description      string `gorm:"type:text"`
	Capacity         string `gorm:"size:120"`
	Power            string `gorm:"size:120"`
	Dimensions       string `gorm:"size:140"`
	Warranty         string `gorm:"size:120"`
	ImagePath        string `gorm:"size:255"`
	Featured         bool   `gorm:"not null;default:false;index"`
	DisplayOrder     int    `gorm:"not null;default:0"`
	Active           bool   `gorm:"not null;default:true;index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ShowcaseMachineModel) TableName() string {
	return constants.TableShowcaseMachines
}
