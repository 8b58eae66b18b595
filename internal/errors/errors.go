package errors

import "errors"

// Sentinel errors for common failure modes.
var (
	ErrPadNotFound = errors.New("scratch pad not found")
	ErrNoSelection = errors.New("no scratch pad selected")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
