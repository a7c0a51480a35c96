// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Recurring template domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring template is not found.
	ErrRecurringNotFound = errors.New("recurring template not found")

	// ErrInvalidFrequency is returned for an unknown frequency type or a non-positive interval.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidEndCondition is returned for a malformed end condition.
	ErrInvalidEndCondition = errors.New("invalid end condition")

	// ErrInvalidRecurringType is returned for an unknown recurring type.
	ErrInvalidRecurringType = errors.New("invalid recurring type")

	// ErrMissingRecurringAccount is returned when a template lacks the account(s) its type requires.
	ErrMissingRecurringAccount = errors.New("recurring template account is required")
)

// RecurringErrorCode defines error codes for recurring template errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecurringNotFound       RecurringErrorCode = "REC-010001"
	ErrCodeInvalidFrequency        RecurringErrorCode = "REC-010002"
	ErrCodeInvalidEndCondition     RecurringErrorCode = "REC-010003"
	ErrCodeInvalidRecurringType    RecurringErrorCode = "REC-010004"
	ErrCodeMissingRecurringAccount RecurringErrorCode = "REC-010005"
)

// RecurringError represents a recurring template error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
