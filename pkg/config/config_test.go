package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "DATABASE_URL", "DB_MAX_CONNS", "DATA_DIR", "LLM_API_KEY", "LLM_TIMEOUT",
		"LLM_RATE_PER_MINUTE", "REDIS_URL", "ACCESS_PASSWORD_HASH",
		"JWT_ISSUER", "JWT_TTL_MINUTES", "LIVE_DEBOUNCE", "LLM_CACHE_TTL",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 4, cfg.DBMaxConns)
	assert.Equal(t, 15*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 30, cfg.LLMRatePerMinute)
	assert.Equal(t, 24*time.Hour, cfg.LLMCacheTTL)
	assert.Equal(t, 600*time.Millisecond, cfg.LiveDebounce)
	assert.Equal(t, "cvtailor", cfg.JWTIssuer)
	assert.Equal(t, 720, cfg.JWTTTLMinutes)
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.LLMEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "10")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("LLM_RATE_PER_MINUTE", "5")
	t.Setenv("ACCESS_PASSWORD_HASH", "$2a$10$abc")
	t.Setenv("LIVE_DEBOUNCE", "250ms")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, 3*time.Second, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.LLMRatePerMinute)
	assert.Equal(t, 250*time.Millisecond, cfg.LiveDebounce)
	assert.True(t, cfg.AuthEnabled())
	assert.True(t, cfg.LLMEnabled())
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name string
		val  string
		want time.Duration
	}{
		{"empty", "", time.Minute},
		{"go duration", "90s", 90 * time.Second},
		{"bare seconds", "20", 20 * time.Second},
		{"garbage", "soon", time.Minute},
		{"negative", "-5s", time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CVTAILOR_TEST_DURATION", tt.val)
			assert.Equal(t, tt.want, getEnvDuration("CVTAILOR_TEST_DURATION", time.Minute))
		})
	}
}
