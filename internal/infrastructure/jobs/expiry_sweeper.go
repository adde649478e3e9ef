package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
)

// ExpirySweeperJob runs the expiration sweep on a fixed interval. The same
// sweep is also exposed over HTTP for manual triggering; both paths call the
// usecase, so a manual run between ticks is safe.
type ExpirySweeperJob struct {
	sweeper  *usecases.SweeperUsecase
	interval time.Duration
	stop     chan struct{}
}

func NewExpirySweeperJob(sweeper *usecases.SweeperUsecase, interval time.Duration) *ExpirySweeperJob {
	return &ExpirySweeperJob{
		sweeper:  sweeper,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *ExpirySweeperJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting expiry sweeper job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "expiry sweeper job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "expiry sweeper job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *ExpirySweeperJob) Stop() {
	close(j.stop)
}

func (j *ExpirySweeperJob) runOnce(ctx context.Context) {
	report := j.sweeper.Sweep(ctx)
	if len(report.Errors) > 0 {
		logger.Error(ctx, "expiry sweep finished with errors",
			zap.Int("total_expired", report.TotalExpired),
			zap.Strings("errors", report.Errors))
	}
}
