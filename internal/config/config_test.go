package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.App.Host)
	assert.Equal(t, "8001", cfg.App.Port)
	assert.Equal(t, "127.0.0.1:8001", cfg.App.Addr())
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 604800, cfg.Auth.TokenTTLSeconds)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "http://localhost:5173", cfg.Cors.FrontendURL)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_IN", "3600")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("FRONTEND_URL", "https://app.example.com")
	t.Setenv("AUTH_BCRYPT_COST", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3600, cfg.Auth.TokenTTLSeconds)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, "https://app.example.com", cfg.Cors.FrontendURL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_IN", "not-a-number")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "nope")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 604800, cfg.Auth.TokenTTLSeconds)
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
