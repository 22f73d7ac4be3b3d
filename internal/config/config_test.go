package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HttpServer.Port)
	assert.Equal(t, "memory", cfg.Cache.Type)
	assert.Equal(t, "form_session", cfg.Session.CookieName)
	assert.Equal(t, "https://apis.codante.io/api/register-user/register", cfg.Registration.URL)
	assert.Equal(t, "https://viacep.com.br", cfg.PostalLookup.BaseURL)
	assert.Equal(t, 24*time.Hour, cfg.PostalLookup.CacheTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("POSTAL_LOOKUP_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HttpServer.Port)
	assert.Equal(t, "redis", cfg.Cache.Type)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Address)
	assert.Equal(t, 3*time.Second, cfg.PostalLookup.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}
