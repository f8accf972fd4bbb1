// Package common defines shared constants and sentinel errors used across
// the AgroConnect client layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Transport-level errors mapped by the API client.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// Auth contract errors (client-side, raised before any state mutation).
	ErrMissingToken = errors.New("auth token missing in response")
)
