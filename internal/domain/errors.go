package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common failure modes across the gateway, store and handlers.
var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("requested resource not found")
	// ErrInvalidCredentials is returned when a bearer credential is
	// missing, expired or rejected. Callers surface it as a login redirect.
	ErrInvalidCredentials = errors.New("invalid credentials provided")
	// ErrValidation is returned when client-side field checks fail.
	// A validation failure never reaches the gateway.
	ErrValidation = errors.New("validation failed")
	// ErrUnavailable is returned on transport or server failure. There are
	// no automatic retries; the attempt is terminal.
	ErrUnavailable = errors.New("service unavailable")
)

// FieldErrors maps a form field name to a human-readable error message.
// A non-empty map blocks submission.
type FieldErrors map[string]string

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool { return len(fe) > 0 }
