// Package common defines shared constants and sentinel errors used across
// the application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Snapshot lifecycle errors: the byte image could not be restored
	// into a working database.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
