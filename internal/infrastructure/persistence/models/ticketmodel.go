package models

import "github.com/giftex-inc/giftex/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	MachineID   uint   `gorm:"not null;index"`
	OpenedByID  uint   `gorm:"not null;index"`
	Category    string `gorm:"size:20;not null;index"`
	SymptomID   *uint  `gorm:"index"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketMediaModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	StoragePath  string `gorm:"size:255;not null"`
	OriginalName string `gorm:"size:255"`
	ContentType  string `gorm:"size:100;not null"`
	SizeBytes    int64  `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketMediaModel) TableName() string {
	return constants.TableTicketMedia
}

type TicketMessageModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	SenderID   uint   `gorm:"not null;index"`
	SenderRole string `gorm:"size:20;not null"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return constants.TableTicketMessages
}
