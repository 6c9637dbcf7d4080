// Package errs defines the error kinds shared across the application.
// Callers classify failures with errors.Is; descriptive context is added at
// the point of failure with fmt.Errorf and %w.
package errs

import "errors"

var (
	// ErrInvalidArgument marks caller-supplied input that violates a
	// precondition. It is always raised before any network call.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthRequired marks operations that need a user token when none is
	// available.
	ErrAuthRequired = errors.New("authentication required")
)
