package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, InsecureDefaultSecret, cfg.Auth.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "http://localhost:8000/analyze", cfg.Engine.URL)
	assert.Equal(t, 10*time.Second, cfg.Engine.Timeout)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("API_SECURITY_SECRET", "rotated-secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("ENGINE_URL", "http://engine:9000/analyze")
	t.Setenv("REDIS_ENABLED", "true")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "rotated-secret", cfg.Auth.Secret)
	assert.False(t, cfg.Auth.UsesInsecureSecret())
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, "http://engine:9000/analyze", cfg.Engine.URL)
	assert.True(t, cfg.Redis.Enabled)
}

func TestAuthConfig_Sanitize(t *testing.T) {
	a := AuthConfig{TokenTTL: -1, UserCacheTTL: -1}
	a.Sanitize()
	assert.Equal(t, 2*time.Hour, a.TokenTTL)
	assert.Equal(t, time.Duration(0), a.UserCacheTTL)
}

func TestEngineConfig_Sanitize(t *testing.T) {
	e := EngineConfig{Timeout: 0}
	e.Sanitize()
	assert.Equal(t, 10*time.Second, e.Timeout)

	e.Timeout = time.Hour
	e.Sanitize()
	assert.Equal(t, 2*time.Minute, e.Timeout)
}
