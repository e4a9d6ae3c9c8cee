package clause

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel every ValidationError unwraps to.
// Callers that do not care about the specific field can match with
// errors.Is(err, clause.ErrInvalidInput).
var ErrInvalidInput = errors.New("invalid clause input")

// ValidationError reports a single data-model invariant violation in a
// raw parameter or request record. It is a permanent, user-visible
// input problem: no retry is meaningful.
type ValidationError struct {
	// Field is the dotted path of the offending field,
	// e.g. "penaltyDuration.amount".
	Field string

	// Message is a human-readable description of the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap makes every ValidationError match ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// IsValidationError returns true if the error is (or wraps) a
// ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
