package config

import (
	"encoding/json"
	"os"

	"github.com/agroconnect/agroconnect-cli/internal/flagx"
	"github.com/agroconnect/agroconnect-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration so JSON can specify them either as strings like "60s" or as
// integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	APIBaseURL               string         `json:"api_base_url"`
	RequestTimeout           timex.Duration `json:"request_timeout"`
	NotificationPollInterval timex.Duration `json:"notification_poll_interval"`
	DatabaseDSN              string         `json:"database_dsn"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when neither is given no JSON is loaded.
// Unset JSON fields leave the current value in place. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	file := flagx.JsonConfigFlags()
	if file == "" {
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationPollInterval.Duration != 0 {
		cfg.NotificationPollInterval = jc.NotificationPollInterval.Duration
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
}
