package usecases

import (
	"context"
	"time"

	"go.uber.org/zap"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/repositories"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/metrics"
)

// SweepReport is the response of one expiration sweep across both tables
type SweepReport struct {
	TotalExpired     int      `json:"totalExpired"`
	UpdatedOrders    []string `json:"updatedOrders"`
	UpdatedDeposits  []string `json:"updatedDeposits"`
	Errors           []string `json:"errors"`
	ProcessingTimeMs int64    `json:"processingTimeMs"`
}

// SweeperUsecase runs the time-based expiration scan. Each run is one
// conditional bulk update per table; re-running after success is a no-op
// because expired rows no longer satisfy status=PENDING.
type SweeperUsecase struct {
	orderRepo   repositories.PaymentRecordRepository
	depositRepo repositories.PaymentRecordRepository
	notifier    Notifier
	metrics     *metrics.Metrics
	grace       time.Duration
}

// NewSweeperUsecase creates a new sweeper usecase
func NewSweeperUsecase(
	orderRepo repositories.PaymentRecordRepository,
	depositRepo repositories.PaymentRecordRepository,
	notifier Notifier,
	m *metrics.Metrics,
	grace time.Duration,
) *SweeperUsecase {
	return &SweeperUsecase{
		orderRepo:   orderRepo,
		depositRepo: depositRepo,
		notifier:    notifier,
		metrics:     m,
		grace:       grace,
	}
}

// Sweep expires every stale PENDING order and deposit. A failure in one table
// is reported and does not abort the other; notification happens after the
// updates, outside any transaction, and never fails the sweep.
func (u *SweeperUsecase) Sweep(ctx context.Context) *SweepReport {
	start := time.Now()
	report := &SweepReport{
		UpdatedOrders:   []string{},
		UpdatedDeposits: []string{},
		Errors:          []string{},
	}

	orders, err := u.orderRepo.ExpireStale(ctx, start, u.grace)
	if err != nil {
		logger.Error(ctx, "order sweep failed", zap.Error(err))
		report.Errors = append(report.Errors, "orders: "+err.Error())
	} else {
		report.TotalExpired += orders.Count
		report.UpdatedOrders = append(report.UpdatedOrders, orders.Numbers...)
		u.notifyExpired(ctx, orders.Records)
	}

	deposits, err := u.depositRepo.ExpireStale(ctx, start, u.grace)
	if err != nil {
		logger.Error(ctx, "deposit sweep failed", zap.Error(err))
		report.Errors = append(report.Errors, "deposits: "+err.Error())
	} else {
		report.TotalExpired += deposits.Count
		report.UpdatedDeposits = append(report.UpdatedDeposits, deposits.Numbers...)
		u.notifyExpired(ctx, deposits.Records)
	}

	report.ProcessingTimeMs = time.Since(start).Milliseconds()

	if u.metrics != nil {
		u.metrics.SweepsTotal.Inc()
		u.metrics.SweepExpired.Add(float64(report.TotalExpired))
	}
	if report.TotalExpired > 0 {
		logger.Info(ctx, "expiration sweep finished",
			zap.Int("total_expired", report.TotalExpired),
			zap.Int64("processing_ms", report.ProcessingTimeMs))
	}
	return report
}

func (u *SweeperUsecase) notifyExpired(ctx context.Context, records []*entities.PaymentRecord) {
	if u.notifier == nil {
		return
	}
	for _, record := range records {
		result := u.notifier.Notify(ctx, record.MerchantID, "payment_expired", map[string]interface{}{
			"order_id":         record.Number,
			"kind":             string(record.Kind),
			"status":           string(entities.RecordStatusExpired),
			"display_amount":   record.DisplayAmount,
			"display_currency": record.DisplayCurrency,
		})
		if !result.Success {
			if u.metrics != nil {
				u.metrics.NotifyFailures.Inc()
			}
			logger.Warn(ctx, "expiry notification failed",
				zap.String("number", record.Number),
				zap.String("error", result.Error))
		}
	}
}
