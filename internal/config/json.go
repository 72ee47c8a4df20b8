package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/minilearn/internal/flagx"
	"github.com/dmitrijs2005/minilearn/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DataDir     string         `json:"data_dir"`
	Storage     string         `json:"storage"`
	RedisURL    string         `json:"redis_url"`
	RedisPrefix string         `json:"redis_prefix"`
	LoginDelay  timex.Duration `json:"login_delay"`
	LogLevel    string         `json:"log_level"`
	CatalogPath string         `json:"catalog_path"`
}

// parseJson overlays cfg with the file named by -c/-config. The DTO is
// seeded from cfg, so keys absent from the file leave values unchanged.
// Read and decode errors panic, as flag errors do.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		DataDir:     cfg.DataDir,
		Storage:     cfg.Storage,
		RedisURL:    cfg.RedisURL,
		RedisPrefix: cfg.RedisPrefix,
		LoginDelay:  timex.Duration{Duration: cfg.LoginDelay},
		LogLevel:    cfg.LogLevel,
		CatalogPath: cfg.CatalogPath,
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.DataDir = jc.DataDir
	cfg.Storage = jc.Storage
	cfg.RedisURL = jc.RedisURL
	cfg.RedisPrefix = jc.RedisPrefix
	cfg.LoginDelay = jc.LoginDelay.Duration
	cfg.LogLevel = jc.LogLevel
	cfg.CatalogPath = jc.CatalogPath
}
