package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "JWT_TTL_MINUTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 7*24*60, cfg.JWTTTLMinutes)
	assert.False(t, cfg.CookieSecure(), "dev runs on plain http")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL_MINUTES", "60")
	t.Setenv("CLIENT_URL", "https://chat.example.com")

	cfg := Load()

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, "https://chat.example.com", cfg.ClientURL)
	assert.True(t, cfg.CookieSecure())
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, 7*24*60, cfg.JWTTTLMinutes)
}
