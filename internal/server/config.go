package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/matzehuels/cardlayout/pkg/cache"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// Config holds the server settings, read from the environment.
type Config struct {
	Addr            string        `env:"CARDLAYOUT_ADDR" envDefault:":8080"`
	ConfigPath      string        `env:"CARDLAYOUT_CONFIG"`
	CacheBackend    string        `env:"CARDLAYOUT_CACHE" envDefault:"none"`
	CacheDir        string        `env:"CARDLAYOUT_CACHE_DIR"`
	SQLitePath      string        `env:"CARDLAYOUT_SQLITE_PATH"`
	RedisURL        string        `env:"CARDLAYOUT_REDIS_URL"`
	MongoURI        string        `env:"CARDLAYOUT_MONGO_URI"`
	RequestTimeout  time.Duration `env:"CARDLAYOUT_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"CARDLAYOUT_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes    int64         `env:"CARDLAYOUT_MAX_BODY_BYTES" envDefault:"4194304"`
	MaxBatch        int           `env:"CARDLAYOUT_MAX_BATCH" envDefault:"1000"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// setDefaults covers a zero Config built in code rather than by LoadConfig.
func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 4 << 20
	}
	if c.MaxBatch <= 0 || c.MaxBatch > pipeline.MaxBatchSize {
		c.MaxBatch = pipeline.MaxBatchSize
	}
}

// CacheConfig returns the cache backend settings.
func (c Config) CacheConfig() cache.Config {
	return cache.Config{
		Backend:    c.CacheBackend,
		Dir:        c.CacheDir,
		SQLitePath: c.SQLitePath,
		RedisURL:   c.RedisURL,
		MongoURI:   c.MongoURI,
	}
}
