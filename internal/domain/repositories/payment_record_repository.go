package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
)

// TransitionOutcome is the result of a transition attempt. Stale and duplicate
// are first-class outcomes, never errors: both drivers of the state machine
// must be able to acknowledge them as success.
type TransitionOutcome string

const (
	TransitionApplied          TransitionOutcome = "APPLIED"
	TransitionIgnoredStale     TransitionOutcome = "IGNORED_STALE"
	TransitionIgnoredDuplicate TransitionOutcome = "IGNORED_DUPLICATE"
	TransitionNotFound         TransitionOutcome = "NOT_FOUND"
)

// SweepResult reports one bulk expiration pass over a single table
type SweepResult struct {
	Count   int
	Numbers []string
	Records []*entities.PaymentRecord
}

// PaymentRecordRepository is the storage contract shared by orders and deposits.
// TryTransition is the single authority over the status column: it must be
// implemented as one atomic conditional UPDATE, never read-then-write.
type PaymentRecordRepository interface {
	Create(ctx context.Context, record *entities.PaymentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentRecord, error)
	GetByNumber(ctx context.Context, number string) (*entities.PaymentRecord, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*entities.PaymentRecord, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.PaymentRecord, int, error)

	// TryTransition attempts to move the record to target, merging fields on
	// success. Concurrent callers racing on the same row observe exactly one
	// TransitionApplied; the rest see stale or duplicate.
	TryTransition(ctx context.Context, id uuid.UUID, target entities.RecordStatus, fields entities.TransitionFields) (TransitionOutcome, error)

	// ExpireStale marks every PENDING record past its deadline as EXPIRED in a
	// single conditional bulk UPDATE. Records with no expired_at fall back to
	// created_at + grace. Idempotent: a second run finds nothing.
	ExpireStale(ctx context.Context, now time.Time, grace time.Duration) (*SweepResult, error)
}
