package config

import "time"

// Config holds runtime settings for the DevTinder client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend (the /api prefix is added per
//     request).
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local SQLite file holding the persisted
//     session.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "devtinder.db"
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
