// Package config assembles the console's runtime settings from layered
// sources: built-in defaults, a JSON file, environment variables, and
// command-line flags. Later sources override earlier ones.
package config

import "time"

// Config holds runtime settings for the libris console.
//
// Fields:
//   - BaseURL: root of the library API, including the /api prefix.
//   - RequestTimeout: per-call timeout applied by the request gateway.
//   - DatabasePath: sqlite file holding the persisted credential.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "libris.db"
}

// LoadConfig constructs a Config: defaults, then JSON file (if given),
// then environment, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
