package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 256, cfg.QRCodeSize)
	assert.Equal(t, 512, cfg.CacheSize)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.False(t, cfg.PersistenceEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://qr:qr@localhost:5432/qr")
	t.Setenv("QR_CODE_SIZE", "512")
	t.Setenv("CACHE_SIZE", "16")
	t.Setenv("CACHE_TTL", "90s")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 512, cfg.QRCodeSize)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.PersistenceEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("QR_CODE_SIZE", "-1")

	_, err := config.Load()

	require.Error(t, err)
}

func TestLoad_Unparsable(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := config.Load()

	require.Error(t, err)
}
