// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors, matched via api.Error.Unwrap.
	ErrorNotFound     = errors.New("not found")
	ErrorUnauthorized = errors.New("unauthorized")

	// Local validation errors.
	ErrorInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")
)
