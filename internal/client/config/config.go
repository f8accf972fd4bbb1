package config

import "time"

// Config holds runtime settings for the AgroConnect CLI.
//
// Fields:
//   - APIBaseURL: root URL of the AgroConnect REST backend, including the
//     /api prefix.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - NotificationPollInterval: how often the unread notification counter is
//     refreshed while logged in.
//   - DatabaseDSN: SQLite DSN of the local session store.
type Config struct {
	APIBaseURL               string
	RequestTimeout           time.Duration
	NotificationPollInterval time.Duration
	DatabaseDSN              string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.NotificationPollInterval = 60 * time.Second
	c.DatabaseDSN = "agroconnect.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
