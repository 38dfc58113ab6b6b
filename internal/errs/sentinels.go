// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated indicates a missing or invalid login session.
	// At the HTTP layer it maps to a redirect to /login, not an error status.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrValidation indicates caller-supplied input rejected at a service boundary.
	ErrValidation = errors.New("validation")
)
