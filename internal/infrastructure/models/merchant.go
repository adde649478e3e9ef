package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	BusinessName   string    `gorm:"type:varchar(255);not null"`
	Status         string    `gorm:"type:varchar(50);not null;index"`
	DefaultChainID string    `gorm:"type:varchar(50)"`
	DefaultAddress string    `gorm:"type:varchar(255)"`
	DefaultToken   string    `gorm:"type:varchar(50)"`
	PinHash        string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Merchant) TableName() string { return "merchants" }
