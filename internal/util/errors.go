// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input provided")
	ErrConflict     = errors.New("duplicate entry")
)

// IsError reports whether err wraps target. Kept as a helper so handler
// switch statements read uniformly.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
