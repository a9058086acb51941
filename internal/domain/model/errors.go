package model

// ValidationError is the single error kind the calculation engine produces.
// Invalid input is rejected, never retried; there is no fatal error in the core.
type ValidationError struct {
	Reason string
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}
