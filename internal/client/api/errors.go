package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/vocabbuilder/internal/common"
)

// Error is an application-level rejection: the server answered with a
// non-2xx status and (usually) a `{"detail": ...}` body. The detail text
// is surfaced to the user verbatim.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Unwrap maps well-known statuses onto the shared sentinels so callers can
// use errors.Is without depending on this package's Error type.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	}
	return nil
}

// AsError extracts an *Error from err, if there is one in the chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
