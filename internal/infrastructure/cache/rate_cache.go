package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/RozoAI/rozo-app-backend-sub000/pkg/redis"
)

const rateKeyPrefix = "rate:usd:"

// RedisRateCache stores USD exchange rates in Redis with a TTL. A miss, a
// connection error or an unparseable value all read as a cache miss; the
// caller falls back to the rate source.
type RedisRateCache struct{}

func NewRedisRateCache() *RedisRateCache {
	return &RedisRateCache{}
}

func (c *RedisRateCache) Get(ctx context.Context, currency string) (float64, bool) {
	value, err := redis.Get(ctx, rateKeyPrefix+currency)
	if err != nil {
		return 0, false
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || rate <= 0 {
		return 0, false
	}
	return rate, true
}

func (c *RedisRateCache) Set(ctx context.Context, currency string, rate float64, ttl time.Duration) error {
	return redis.Set(ctx, rateKeyPrefix+currency, strconv.FormatFloat(rate, 'f', -1, 64), ttl)
}
