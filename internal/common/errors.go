// Package common contains shared constants and sentinel errors used across
// the client. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// ErrValidation marks input rejected client-side before any request
	// is issued (e.g. mismatched password confirmation).
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("not found")
)
