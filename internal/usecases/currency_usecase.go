package usecases

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	domainerrors "github.com/RozoAI/rozo-app-backend-sub000/internal/domain/errors"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
)

// CurrencyUsecase converts display amounts to USD at record-creation time.
// The rate cache is constructor-injected; there is no package-level cache.
type CurrencyUsecase struct {
	source RateSource
	cache  RateCache
	ttl    time.Duration
}

// NewCurrencyUsecase creates a new currency usecase
func NewCurrencyUsecase(source RateSource, cache RateCache, ttl time.Duration) *CurrencyUsecase {
	return &CurrencyUsecase{source: source, cache: cache, ttl: ttl}
}

// ToUSD converts amount in the given fiat currency to a USD string with two
// decimal places
func (u *CurrencyUsecase) ToUSD(ctx context.Context, amount, currency string) (string, error) {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil || value <= 0 {
		return "", domainerrors.BadRequest("invalid display amount: " + amount)
	}

	currency = strings.ToUpper(currency)
	if currency == "USD" {
		return fmt.Sprintf("%.2f", value), nil
	}

	rate, err := u.usdRate(ctx, currency)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", value*rate), nil
}

func (u *CurrencyUsecase) usdRate(ctx context.Context, currency string) (float64, error) {
	if u.cache != nil {
		if rate, ok := u.cache.Get(ctx, currency); ok {
			return rate, nil
		}
	}

	rate, err := u.source.GetUSDRate(ctx, currency)
	if err != nil {
		return 0, domainerrors.BadRequest("unsupported currency: " + currency)
	}
	if rate <= 0 {
		return 0, domainerrors.BadRequest("unsupported currency: " + currency)
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, currency, rate, u.ttl); err != nil {
			logger.Warn(ctx, "rate cache write failed", zap.String("currency", currency), zap.Error(err))
		}
	}
	return rate, nil
}
