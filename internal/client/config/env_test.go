package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("AGROCONNECT_API_URL", "https://env.example/api")
	t.Setenv("AGROCONNECT_NOTIF_INTERVAL", "45s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://env.example/api", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.NotificationPollInterval)
	// Unset variables keep the defaults.
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "agroconnect.db", cfg.DatabaseDSN)
}
