package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 90, cfg.RetentionDays)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Webhooks.SendGridPublicKey)
	assert.Empty(t, cfg.Webhooks.ResendSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "sendsight_test")
	t.Setenv("REDIS_DB", "5")
	t.Setenv("RETENTION_DAYS", "30")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("SENDGRID_WEBHOOK_PUBLIC_KEY", "test-key")
	t.Setenv("RESEND_WEBHOOK_SECRET", "whsec_test")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sendsight_test", cfg.Database.DBName)
	assert.Equal(t, 5, cfg.Redis.DB)
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "test-key", cfg.Webhooks.SendGridPublicKey)
	assert.Equal(t, "whsec_test", cfg.Webhooks.ResendSecret)
}

func TestRetentionDaysFallback(t *testing.T) {
	t.Setenv("RETENTION_DAYS", "-5")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.RetentionDays)
}
