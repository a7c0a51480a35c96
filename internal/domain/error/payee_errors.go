// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Payee domain errors.
var (
	// ErrPayeeNotFound is returned when a payee is not found in the registry.
	ErrPayeeNotFound = errors.New("payee not found")

	// ErrMissingPayeeName is returned when a payee is created without a name.
	ErrMissingPayeeName = errors.New("payee name is required")

	// ErrMissingReplacementPayee is returned when a delete request omits the replacement.
	ErrMissingReplacementPayee = errors.New("replacement payee required")
)

// PayeeErrorCode defines error codes for payee errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PayeeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePayeeNotFound           PayeeErrorCode = "PAY-010001"
	ErrCodeMissingPayeeName        PayeeErrorCode = "PAY-010002"
	ErrCodeMissingReplacementPayee PayeeErrorCode = "PAY-010003"
)

// PayeeError represents a payee error with code and message.
type PayeeError struct {
	Code    PayeeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PayeeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PayeeError) Unwrap() error {
	return e.Err
}

// NewPayeeError creates a new PayeeError with the given code and message.
func NewPayeeError(code PayeeErrorCode, message string, err error) *PayeeError {
	return &PayeeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
