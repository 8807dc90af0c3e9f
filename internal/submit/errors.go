package submit

import (
	"errors"
	"fmt"
)

// MsgNoSections is the user-facing message for submitting an empty checklist.
const MsgNoSections = "Add at least one section before submitting"

// ValidationError reports a document that cannot be submitted.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
