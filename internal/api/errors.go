package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// StatusError is any non-2xx answer from the marketplace backend, with the
// human-readable message pulled out of the body when there is one.
type StatusError struct {
	Status  int
	Message string
	// Fields holds 422 validation errors keyed by input name, each with one
	// or more messages the UI surfaces individually.
	Fields map[string][]string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("remote status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("remote status %d", e.Status)
}

// Unwrap maps the statuses the session gate reacts to onto sentinels.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	}
	return nil
}

// remoteError is the backend's error body: {"message": "...", "errors": {field: [msgs]}}.
type remoteError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
