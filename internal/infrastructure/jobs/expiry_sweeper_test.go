package jobs

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/repositories"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}

type sweepRepoStub struct {
	calls  int64
	result *repositories.SweepResult
}

func (s *sweepRepoStub) Create(context.Context, *entities.PaymentRecord) error { return nil }
func (s *sweepRepoStub) GetByID(context.Context, uuid.UUID) (*entities.PaymentRecord, error) {
	return nil, nil
}
func (s *sweepRepoStub) GetByNumber(context.Context, string) (*entities.PaymentRecord, error) {
	return nil, nil
}
func (s *sweepRepoStub) GetByPaymentID(context.Context, string) (*entities.PaymentRecord, error) {
	return nil, nil
}
func (s *sweepRepoStub) ListByMerchant(context.Context, uuid.UUID, int, int) ([]*entities.PaymentRecord, int, error) {
	return nil, 0, nil
}
func (s *sweepRepoStub) TryTransition(context.Context, uuid.UUID, entities.RecordStatus, entities.TransitionFields) (repositories.TransitionOutcome, error) {
	return repositories.TransitionApplied, nil
}
func (s *sweepRepoStub) ExpireStale(context.Context, time.Time, time.Duration) (*repositories.SweepResult, error) {
	atomic.AddInt64(&s.calls, 1)
	if s.result != nil {
		return s.result, nil
	}
	return &repositories.SweepResult{}, nil
}

func newTestJob(interval time.Duration) (*ExpirySweeperJob, *sweepRepoStub) {
	repo := &sweepRepoStub{}
	sweeper := usecases.NewSweeperUsecase(repo, &sweepRepoStub{}, nil, nil, 10*time.Minute)
	return NewExpirySweeperJob(sweeper, interval), repo
}

func TestRunOnce_InvokesSweep(t *testing.T) {
	job, repo := newTestJob(time.Millisecond)

	job.runOnce(context.Background())
	require.Equal(t, int64(1), atomic.LoadInt64(&repo.calls))
}

func TestStart_TicksUntilContextCancelled(t *testing.T) {
	job, repo := newTestJob(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&repo.calls) >= 2
	}, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on context cancel")
	}
}

func TestStart_StopsByStopChannel(t *testing.T) {
	job, _ := newTestJob(time.Hour)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()
	job.Stop()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not stop on Stop()")
	}
}
