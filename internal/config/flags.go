package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/minilearn/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// listed here are passed to the FlagSet; -c/-config belong to parseJson.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-r", "-l", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite, memory, redis)")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "redis URL")
	fs.DurationVar(&cfg.LoginDelay, "l", cfg.LoginDelay, "simulated login latency")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
