package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing. Durations accept the
// usual Go syntax ("15s", "1m").
type envConfig struct {
	APIBaseURL               string        `env:"AGROCONNECT_API_URL"`
	RequestTimeout           time.Duration `env:"AGROCONNECT_REQUEST_TIMEOUT"`
	NotificationPollInterval time.Duration `env:"AGROCONNECT_NOTIF_INTERVAL"`
	DatabaseDSN              string        `env:"AGROCONNECT_DB"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the current value in place. Panics on malformed values.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.NotificationPollInterval != 0 {
		cfg.NotificationPollInterval = ec.NotificationPollInterval
	}
	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
}
