package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRecordRow is the shared column layout of the orders and deposits
// tables. The two tables are structurally identical; the repository selects
// the physical table with gorm's Table(), so no TableName method is defined.
type PaymentRecordRow struct {
	ID                uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Number            string     `gorm:"column:number;type:varchar(32);not null;uniqueIndex"`
	PaymentID         string     `gorm:"column:payment_id;type:varchar(255);not null;uniqueIndex"`
	MerchantID        uuid.UUID  `gorm:"column:merchant_id;type:uuid;not null;index"`
	Status            string     `gorm:"column:status;type:varchar(50);not null;index"`
	RequiredAmountUSD string     `gorm:"column:required_amount_usd;type:decimal(36,18);not null"`
	DisplayAmount     string     `gorm:"column:display_amount;type:varchar(100);not null"`
	DisplayCurrency   string     `gorm:"column:display_currency;type:varchar(10);not null"`
	RequiredToken     string     `gorm:"column:required_token;type:varchar(50);not null"`
	MerchantChainID   string     `gorm:"column:merchant_chain_id;type:varchar(50);not null"`
	MerchantAddress   string     `gorm:"column:merchant_address;type:varchar(255);not null"`
	CallbackPayload   *string    `gorm:"column:callback_payload;type:jsonb"`
	SourceTxnHash     *string    `gorm:"column:source_txn_hash;type:varchar(255);index"`
	SourceChainName   *string    `gorm:"column:source_chain_name;type:varchar(100)"`
	SourceTokenAddr   *string    `gorm:"column:source_token_address;type:varchar(255)"`
	SourceTokenAmount *string    `gorm:"column:source_token_amount;type:varchar(100)"`
	ExpiredAt         *time.Time `gorm:"column:expired_at;index"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}
