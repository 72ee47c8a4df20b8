package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/minilearn/internal/storage"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds runtime settings for the CLI.
//
// CatalogPath is optional; when empty the built-in course catalog is used.
type Config struct {
	DataDir     string
	Storage     string
	RedisURL    string
	RedisPrefix string
	LoginDelay  time.Duration
	LogLevel    string
	CatalogPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".minilearn"
	c.Storage = StorageSQLite
	c.RedisURL = "redis://localhost:6379/0"
	c.RedisPrefix = storage.DefaultRedisPrefix
	c.LoginDelay = 800 * time.Millisecond
	c.LogLevel = "warn"
	c.CatalogPath = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate rejects settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageSQLite:
		if c.DataDir == "" {
			return fmt.Errorf("data_dir is required for %s storage", c.Storage)
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("redis_url is required for %s storage", c.Storage)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.LoginDelay < 0 {
		return fmt.Errorf("login_delay must not be negative, got %s", c.LoginDelay)
	}
	return nil
}
