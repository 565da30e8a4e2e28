package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "PAYEVO_SECRET_KEY", "PAYEVO_URL", "PAYEVO_TIMEOUT", "ALLOWED_ORIGINS",
		"DATABASE_URL", "WEBHOOK_RETENTION", "RABBITMQ_HOST", "MAIL_HOST", "MAIL_PORT", "MAIL_FROM", "MAIL_USER",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.PayEvo.SecretKey)
	assert.Zero(t, cfg.PayEvo.Timeout)
	assert.Equal(t, 720*time.Hour, cfg.DB.Retention)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.DB.Enabled())
	assert.False(t, cfg.Rabbit.Enabled())
	assert.False(t, cfg.SMTP.Enabled())
}

func TestFromEnvValues(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("PAYEVO_SECRET_KEY", "sk_live_x")
	t.Setenv("PAYEVO_TIMEOUT", "10s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("DATABASE_URL", "postgres://localhost/checkout")
	t.Setenv("WEBHOOK_RETENTION", "48h")
	t.Setenv("RABBITMQ_HOST", "rabbit")
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("MAIL_USER", "noreply@example.com")
	t.Setenv("MAIL_FROM", "")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "sk_live_x", cfg.PayEvo.SecretKey)
	assert.Equal(t, 10*time.Second, cfg.PayEvo.Timeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 48*time.Hour, cfg.DB.Retention)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "noreply@example.com", cfg.SMTP.From)
	assert.True(t, cfg.DB.Enabled())
	assert.True(t, cfg.Rabbit.Enabled())
	assert.True(t, cfg.SMTP.Enabled())
}

func TestFromEnvInvalidValues(t *testing.T) {
	t.Setenv("PAYEVO_TIMEOUT", "trinta")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "PAYEVO_TIMEOUT")

	t.Setenv("PAYEVO_TIMEOUT", "")
	t.Setenv("MAIL_PORT", "smtp")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "MAIL_PORT")
}
