package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Ledger.SeedDemoData)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("LEDGER_SEED_DEMO_DATA", "true")
	t.Setenv("RATE_LIMIT_PER_SECOND", "20")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Ledger.SeedDemoData)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_SECOND", "fast")
	t.Setenv("LEDGER_SEED_DEMO_DATA", "yes please")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
	assert.False(t, cfg.Ledger.SeedDemoData)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestEnvironmentClassification(t *testing.T) {
	dev := &Config{Server: ServerConfig{Environment: "development"}}
	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())

	prod := &Config{Server: ServerConfig{Environment: "production"}}
	assert.True(t, prod.IsProduction())
	assert.False(t, prod.IsDevelopment())
}
