// Package config loads runtime configuration for the minilearn CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string     data directory holding learning.db
//	-s string     storage backend: sqlite, memory or redis
//	-r string     redis URL, e.g. redis://localhost:6379/0
//	-l duration   simulated login latency, e.g. 800ms
//	-v string     log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "800ms" or
// integer nanoseconds. Keys missing from the file keep their defaults.
//
//	{
//	  "data_dir": ".minilearn",
//	  "storage": "sqlite",
//	  "redis_url": "redis://localhost:6379/0",
//	  "redis_prefix": "minilearn:",
//	  "login_delay": "800ms",
//	  "log_level": "info",
//	  "catalog_path": ""
//	}
package config
