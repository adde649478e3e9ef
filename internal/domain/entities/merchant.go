package entities

import (
	"time"

	"github.com/google/uuid"
)

// MerchantStatus represents merchant status
type MerchantStatus string

const (
	MerchantStatusActive    MerchantStatus = "ACTIVE"
	MerchantStatusSuspended MerchantStatus = "SUSPENDED"
)

// Merchant represents a merchant collecting payments through the platform
type Merchant struct {
	ID             uuid.UUID      `json:"id"`
	Email          string         `json:"email"`
	BusinessName   string         `json:"businessName"`
	Status         MerchantStatus `json:"status"`
	DefaultChainID string         `json:"defaultChainId"`
	DefaultAddress string         `json:"defaultAddress"`
	DefaultToken   string         `json:"defaultToken"`
	PinHash        string         `json:"-"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
