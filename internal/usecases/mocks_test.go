package usecases_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/entities"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/domain/repositories"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("development")
	os.Exit(m.Run())
}

type MockPaymentRecordRepository struct {
	mock.Mock
}

func (m *MockPaymentRecordRepository) Create(ctx context.Context, record *entities.PaymentRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPaymentRecordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PaymentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRecordRepository) GetByNumber(ctx context.Context, number string) (*entities.PaymentRecord, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRecordRepository) GetByPaymentID(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRecordRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.PaymentRecord, int, error) {
	args := m.Called(ctx, merchantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*entities.PaymentRecord), args.Int(1), args.Error(2)
}

func (m *MockPaymentRecordRepository) TryTransition(ctx context.Context, id uuid.UUID, target entities.RecordStatus, fields entities.TransitionFields) (repositories.TransitionOutcome, error) {
	args := m.Called(ctx, id, target, fields)
	return args.Get(0).(repositories.TransitionOutcome), args.Error(1)
}

func (m *MockPaymentRecordRepository) ExpireStale(ctx context.Context, now time.Time, grace time.Duration) (*repositories.SweepResult, error) {
	args := m.Called(ctx, now, grace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.SweepResult), args.Error(1)
}

type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) GetByEmail(ctx context.Context, email string) (*entities.Merchant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Merchant), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, merchantID uuid.UUID, event string, payload map[string]interface{}) usecases.NotifyResult {
	args := m.Called(ctx, merchantID, event, payload)
	return args.Get(0).(usecases.NotifyResult)
}

type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) GetUSDRate(ctx context.Context, currency string) (float64, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(float64), args.Error(1)
}

type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) Get(ctx context.Context, currency string) (float64, bool) {
	args := m.Called(ctx, currency)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockRateCache) Set(ctx context.Context, currency string, rate float64, ttl time.Duration) error {
	args := m.Called(ctx, currency, rate, ttl)
	return args.Error(0)
}

type MockPaymentLinkClient struct {
	mock.Mock
}

func (m *MockPaymentLinkClient) CreateLink(ctx context.Context, number, amountUSD, token, chainID, address string, expiresAt time.Time) (*usecases.PaymentLink, error) {
	args := m.Called(ctx, number, amountUSD, token, chainID, address, expiresAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecases.PaymentLink), args.Error(1)
}
