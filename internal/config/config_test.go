package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Minute, cfg.Sweeper.Interval)
	assert.Equal(t, 10*time.Minute, cfg.Sweeper.GracePeriod)
	assert.False(t, cfg.Webhook.StrictValidation)
	assert.Equal(t, 30*time.Minute, cfg.Payment.OrderTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SWEEPER_INTERVAL", "30s")
	t.Setenv("SWEEPER_GRACE_PERIOD", "20m")
	t.Setenv("WEBHOOK_STRICT_VALIDATION", "true")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("WEBHOOK_TOKEN", "whsec_test")

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.Sweeper.Interval)
	assert.Equal(t, 20*time.Minute, cfg.Sweeper.GracePeriod)
	assert.True(t, cfg.Webhook.StrictValidation)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, "whsec_test", cfg.Webhook.Token)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("SWEEPER_INTERVAL", "soon")
	t.Setenv("WEBHOOK_STRICT_VALIDATION", "maybe")

	cfg := Load()
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, time.Minute, cfg.Sweeper.Interval)
	assert.False(t, cfg.Webhook.StrictValidation)
}

func TestDatabaseURL(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", DBName: "payments", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/payments?sslmode=disable&prepare_threshold=0", cfg.URL())
}
