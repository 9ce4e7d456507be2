package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a .env file
// first when one exists next to the binary:
//
//	LIBRIS_BASE_URL         root of the library API
//	LIBRIS_REQUEST_TIMEOUT  per-call timeout in seconds
//	LIBRIS_DB_PATH          sqlite file for the persisted credential
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("LIBRIS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LIBRIS_REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("LIBRIS_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
