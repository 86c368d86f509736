package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "JWT_TTL_HOURS", "REDIS_ADDR", "AUTH_DISABLED", "DIAGNOSTICS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.AuthDisabled)
	assert.False(t, cfg.Diagnostics)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("DIAGNOSTICS", "1")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.AuthDisabled)
	assert.True(t, cfg.Diagnostics)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "not-a-number")
	t.Setenv("AUTH_DISABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.AuthDisabled)
}
