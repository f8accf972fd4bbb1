// Package config loads runtime configuration for the AgroConnect CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), AGROCONNECT_* prefixed.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the AgroConnect API
//	-t int      request timeout (seconds)
//	-i int      notification poll interval (seconds)
//	-d string   SQLite DSN of the local session store
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "60s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "request_timeout": "15s",
//	  "notification_poll_interval": "60s",
//	  "database_dsn": "agroconnect.db"
//	}
package config
