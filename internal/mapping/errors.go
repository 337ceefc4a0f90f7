package mapping

import "errors"

var (
	// ErrInvalidInput is returned when an operation is rejected before any
	// store access: malformed URL, missing owner id, bad page bounds.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when no live mapping exists for a code.
	ErrNotFound = errors.New("mapping not found")

	// ErrUnauthorized is returned when the supplied owner id does not match
	// the mapping's owner. The redirect-facing caller is expected to fold
	// this into a generic not-found response.
	ErrUnauthorized = errors.New("owner mismatch")

	// ErrCodeSpaceExhausted is returned when the bounded collision-retry
	// loop fails to find an unused code.
	ErrCodeSpaceExhausted = errors.New("code space exhausted")
)
