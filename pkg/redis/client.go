package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/config"
)

// pingTimeout bounds the startup connectivity check
const pingTimeout = 5 * time.Second

var client *redis.Client

// Init connects the shared client. Redis backs two concerns in this service:
// idempotency replay on the creation endpoints and the exchange-rate TTL
// cache; record state itself never lives here.
func Init(cfg config.RedisConfig) error {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return err
	}
	if cfg.PASSWORD != "" {
		opts.Password = cfg.PASSWORD
	}

	client = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return client.Ping(ctx).Err()
}

// Close releases the shared client's connections
func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}

// SetClient swaps the shared client (used by tests with miniredis)
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the shared client
func GetClient() *redis.Client {
	return client
}

// Set stores a key with a TTL
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key; a miss returns redis.Nil
func Get(ctx context.Context, key string) (string, error) {
	return client.Get(ctx, key).Result()
}

// Del removes a key
func Del(ctx context.Context, key string) error {
	return client.Del(ctx, key).Err()
}

// SetNX sets a key only if it does not exist, acquiring it as a lock
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return client.SetNX(ctx, key, value, expiration).Result()
}
