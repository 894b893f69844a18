package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseURL string        `env:"DATABASE_URL"`
	QRCodeSize  int           `env:"QR_CODE_SIZE" envDefault:"256"`
	CacheSize   int           `env:"CACHE_SIZE" envDefault:"512"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.QRCodeSize <= 0 {
		return nil, fmt.Errorf("QR_CODE_SIZE must be positive, got %d", cfg.QRCodeSize)
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("CACHE_SIZE must be positive, got %d", cfg.CacheSize)
	}
	return cfg, nil
}

// PersistenceEnabled reports whether issued payloads are stored.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL != ""
}
