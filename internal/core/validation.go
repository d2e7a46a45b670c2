package core

import "errors"

// ValidationFailure is a recoverable, user-facing rejection: the operation is
// aborted, nothing is mutated, and the message is safe to show the customer.
type ValidationFailure struct {
	Message string
}

func (e *ValidationFailure) Error() string {
	return e.Message
}

func Invalid(message string) error {
	return &ValidationFailure{Message: message}
}

// IsValidationFailure separates user-facing rejections from internal errors
// so handlers can pick the right status code.
func IsValidationFailure(err error) bool {
	var vf *ValidationFailure
	return errors.As(err, &vf)
}
