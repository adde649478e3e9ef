package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Webhook  WebhookConfig
	Sweeper  SweeperConfig
	Notifier NotifierConfig
	Payment  PaymentConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// WebhookConfig holds processor webhook configuration
type WebhookConfig struct {
	// Token is the shared secret the processor sends on every callback
	Token string
	// StrictValidation additionally checks chain id, token and amount
	// against the stored payment terms. Off by default; the processor
	// occasionally settles via a different chain than was quoted.
	StrictValidation bool
}

// SweeperConfig holds expiration sweeper configuration
type SweeperConfig struct {
	Interval time.Duration
	// GracePeriod is the fallback deadline for legacy records that
	// predate expired_at
	GracePeriod time.Duration
}

// NotifierConfig holds merchant notification configuration
type NotifierConfig struct {
	URL     string
	Timeout time.Duration
}

// PaymentConfig holds record creation configuration
type PaymentConfig struct {
	ProcessorURL string
	ProcessorKey string
	OrderTTL     time.Duration
	DepositTTL   time.Duration
	RateCacheTTL time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "payments"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Webhook: WebhookConfig{
			Token:            getEnv("WEBHOOK_TOKEN", ""),
			StrictValidation: getEnvAsBool("WEBHOOK_STRICT_VALIDATION", false),
		},
		Sweeper: SweeperConfig{
			Interval:    getEnvAsDuration("SWEEPER_INTERVAL", time.Minute),
			GracePeriod: getEnvAsDuration("SWEEPER_GRACE_PERIOD", 10*time.Minute),
		},
		Notifier: NotifierConfig{
			URL:     getEnv("NOTIFIER_URL", ""),
			Timeout: getEnvAsDuration("NOTIFIER_TIMEOUT", 5*time.Second),
		},
		Payment: PaymentConfig{
			ProcessorURL: getEnv("PROCESSOR_API_URL", ""),
			ProcessorKey: getEnv("PROCESSOR_API_KEY", ""),
			OrderTTL:     getEnvAsDuration("ORDER_TTL", 30*time.Minute),
			DepositTTL:   getEnvAsDuration("DEPOSIT_TTL", 30*time.Minute),
			RateCacheTTL: getEnvAsDuration("RATE_CACHE_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
