package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("PROOF_MAX_WIDTH", "abc")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 1600, cfg.ProofMaxWidth)
	assert.False(t, cfg.ProofsEnabled())
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("S3_BUCKET", "comprovantes")
	t.Setenv("CORS_ORIGINS", "https://app.plantoes.com.br, ,http://localhost:3000")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.ProofsEnabled())
	assert.Equal(t, []string{"https://app.plantoes.com.br", "http://localhost:3000"}, cfg.CORSOrigins)
}
