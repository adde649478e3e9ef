package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RecordStatus represents the lifecycle status of an order or deposit
type RecordStatus string

const (
	RecordStatusPending     RecordStatus = "PENDING"
	RecordStatusProcessing  RecordStatus = "PROCESSING"
	RecordStatusCompleted   RecordStatus = "COMPLETED"
	RecordStatusFailed      RecordStatus = "FAILED"
	RecordStatusExpired     RecordStatus = "EXPIRED"
	RecordStatusDiscrepancy RecordStatus = "DISCREPANCY"
)

// RecordKind selects which physical table a PaymentRecord lives in
type RecordKind string

const (
	RecordKindOrder   RecordKind = "order"
	RecordKindDeposit RecordKind = "deposit"
)

// StatusRank returns the forward-only ordering of statuses.
// PENDING=0, PROCESSING=1, all terminal statuses=2. A transition may never
// move a record to a lower rank.
func StatusRank(s RecordStatus) int {
	switch s {
	case RecordStatusPending:
		return 0
	case RecordStatusProcessing:
		return 1
	case RecordStatusCompleted, RecordStatusFailed, RecordStatusExpired, RecordStatusDiscrepancy:
		return 2
	default:
		return -1
	}
}

// IsTerminal reports whether the status has no further expected transition
func (s RecordStatus) IsTerminal() bool {
	return StatusRank(s) == 2
}

// IsValid reports whether the status is one of the known lifecycle statuses
func (s RecordStatus) IsValid() bool {
	return StatusRank(s) >= 0
}

// PaymentRecord represents an order or deposit row. Orders and deposits are
// structurally identical and share one state machine; RecordKind selects the table.
type PaymentRecord struct {
	ID                uuid.UUID    `json:"id"`
	Kind              RecordKind   `json:"kind"`
	Number            string       `json:"number"`
	PaymentID         string       `json:"paymentId"`
	MerchantID        uuid.UUID    `json:"merchantId"`
	Status            RecordStatus `json:"status"`
	RequiredAmountUSD string       `json:"requiredAmountUsd"`
	DisplayAmount     string       `json:"displayAmount"`
	DisplayCurrency   string       `json:"displayCurrency"`
	RequiredToken     string       `json:"requiredToken"`
	MerchantChainID   string       `json:"merchantChainId"`
	MerchantAddress   string       `json:"merchantAddress"`
	CallbackPayload   null.String  `json:"-"`
	SourceTxnHash     null.String  `json:"sourceTxnHash,omitempty"`
	SourceChainName   null.String  `json:"sourceChainName,omitempty"`
	SourceTokenAddr   null.String  `json:"sourceTokenAddress,omitempty"`
	SourceTokenAmount null.String  `json:"sourceTokenAmount,omitempty"`
	ExpiredAt         *time.Time   `json:"expiredAt,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// TransitionFields carries the webhook-supplied fields merged into a record
// when a transition is applied. Empty values are not written.
type TransitionFields struct {
	SourceTxnHash     string
	SourceChainName   string
	SourceTokenAddr   string
	SourceTokenAmount string
	CallbackPayload   string
}

// CreateRecordInput represents input for creating an order or deposit
type CreateRecordInput struct {
	MerchantID      uuid.UUID `json:"-"`
	DisplayAmount   string    `json:"displayAmount" binding:"required"`
	DisplayCurrency string    `json:"displayCurrency" binding:"required"`
	RequiredToken   string    `json:"requiredToken"`
	MerchantChainID string    `json:"merchantChainId"`
	MerchantAddress string    `json:"merchantAddress"`
	Description     string    `json:"description"`
}

// CreateRecordResponse represents response for record creation
type CreateRecordResponse struct {
	ID                uuid.UUID    `json:"id"`
	Number            string       `json:"number"`
	PaymentID         string       `json:"paymentId"`
	PaymentLink       string       `json:"paymentLink"`
	Status            RecordStatus `json:"status"`
	RequiredAmountUSD string       `json:"requiredAmountUsd"`
	DisplayAmount     string       `json:"displayAmount"`
	DisplayCurrency   string       `json:"displayCurrency"`
	ExpiredAt         time.Time    `json:"expiredAt"`
}
