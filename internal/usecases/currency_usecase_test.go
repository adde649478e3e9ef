package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
)

func TestToUSD_PassthroughAndRounding(t *testing.T) {
	uc := usecases.NewCurrencyUsecase(new(MockRateSource), nil, time.Minute)
	ctx := context.Background()

	got, err := uc.ToUSD(ctx, "10.5", "usd")
	require.NoError(t, err)
	assert.Equal(t, "10.50", got)

	got, err = uc.ToUSD(ctx, "0.999", "USD")
	require.NoError(t, err)
	assert.Equal(t, "1.00", got)
}

func TestToUSD_InvalidAmount(t *testing.T) {
	uc := usecases.NewCurrencyUsecase(new(MockRateSource), nil, time.Minute)
	ctx := context.Background()

	for _, amount := range []string{"", "abc", "0", "-3"} {
		_, err := uc.ToUSD(ctx, amount, "USD")
		assert.Error(t, err, "amount %q", amount)
	}
}

func TestToUSD_ConvertsViaRateSource(t *testing.T) {
	source := new(MockRateSource)
	cache := new(MockRateCache)
	uc := usecases.NewCurrencyUsecase(source, cache, time.Minute)

	cache.On("Get", mock.Anything, "EUR").Return(0.0, false).Once()
	source.On("GetUSDRate", mock.Anything, "EUR").Return(1.10, nil).Once()
	cache.On("Set", mock.Anything, "EUR", 1.10, time.Minute).Return(nil).Once()

	got, err := uc.ToUSD(context.Background(), "100", "eur")
	require.NoError(t, err)
	assert.Equal(t, "110.00", got)
	cache.AssertExpectations(t)
	source.AssertExpectations(t)
}

func TestToUSD_CacheHitSkipsSource(t *testing.T) {
	source := new(MockRateSource)
	cache := new(MockRateCache)
	uc := usecases.NewCurrencyUsecase(source, cache, time.Minute)

	cache.On("Get", mock.Anything, "JPY").Return(0.0068, true).Once()

	got, err := uc.ToUSD(context.Background(), "1000", "JPY")
	require.NoError(t, err)
	assert.Equal(t, "6.80", got)
	source.AssertNotCalled(t, "GetUSDRate", mock.Anything, mock.Anything)
}

func TestToUSD_UnsupportedCurrency(t *testing.T) {
	source := new(MockRateSource)
	uc := usecases.NewCurrencyUsecase(source, nil, time.Minute)

	source.On("GetUSDRate", mock.Anything, "XXX").Return(0.0, errors.New("no such currency")).Once()

	_, err := uc.ToUSD(context.Background(), "10", "XXX")
	assert.Error(t, err)
}

func TestToUSD_CacheWriteFailureIgnored(t *testing.T) {
	source := new(MockRateSource)
	cache := new(MockRateCache)
	uc := usecases.NewCurrencyUsecase(source, cache, time.Minute)

	cache.On("Get", mock.Anything, "GBP").Return(0.0, false).Once()
	source.On("GetUSDRate", mock.Anything, "GBP").Return(1.25, nil).Once()
	cache.On("Set", mock.Anything, "GBP", 1.25, time.Minute).Return(errors.New("redis down")).Once()

	got, err := uc.ToUSD(context.Background(), "4", "GBP")
	require.NoError(t, err)
	assert.Equal(t, "5.00", got)
}
