package api

import (
	"errors"
	"net/http"

	"github.com/agroconnect/agroconnect-cli/internal/common"
)

// ServerError is a non-2xx response carrying the backend's message.
// Unwrap maps authorization statuses onto common.ErrUnauthorized so callers
// can use errors.Is without inspecting status codes.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func (e *ServerError) Unwrap() error {
	if e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden {
		return common.ErrUnauthorized
	}
	return nil
}

// ServerMessage extracts the backend-provided message from err, or returns
// fallback when none is present. Used to render notices: server message when
// available, generic localized string otherwise.
func ServerMessage(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}
