package api

import (
	"errors"
	"fmt"
)

// ErrFetch marks every failure to obtain a usable response from the API:
// transport errors, non-2xx statuses and undecodable bodies.
var ErrFetch = errors.New("fetch failed")

// envelope is the error body the API returns on non-2xx responses.
type envelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// StatusError is returned for non-2xx responses. Codes are carried for logging
// only; callers treat every status the same way.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	switch {
	case e.Message != "" && e.Code != "":
		return fmt.Sprintf("api status %d: %s (%s)", e.Status, e.Message, e.Code)
	case e.Message != "":
		return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
	default:
		return fmt.Sprintf("api status %d", e.Status)
	}
}

// Unwrap lets errors.Is(err, ErrFetch) match status failures.
func (e *StatusError) Unwrap() error { return ErrFetch }

func fetchError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFetch, op, err)
}
