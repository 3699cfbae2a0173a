package pricing

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a pricing rule does not exist.
var ErrNotFound = errors.New("pricing rule not found")

// ValidationError reports input a service boundary must reject.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
