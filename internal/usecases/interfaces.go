package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NotifyResult is the outcome of one best-effort merchant notification
type NotifyResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Notifier delivers best-effort push notifications to merchants. Failures are
// logged by callers and never propagate into the driving operation.
type Notifier interface {
	Notify(ctx context.Context, merchantID uuid.UUID, event string, payload map[string]interface{}) NotifyResult
}

// RateSource resolves a fiat currency to its USD exchange rate
type RateSource interface {
	GetUSDRate(ctx context.Context, currency string) (float64, error)
}

// RateCache caches exchange rates with a TTL. Injected via constructor so
// handlers never share a package-level cache.
type RateCache interface {
	Get(ctx context.Context, currency string) (float64, bool)
	Set(ctx context.Context, currency string, rate float64, ttl time.Duration) error
}

// PaymentLink is a processor-issued payment link
type PaymentLink struct {
	PaymentID string
	URL       string
}

// PaymentLinkClient creates payment links with the external settlement
// network. Link generation itself is a black box to the lifecycle engine.
type PaymentLinkClient interface {
	CreateLink(ctx context.Context, number, amountUSD, token, chainID, address string, expiresAt time.Time) (*PaymentLink, error)
}
