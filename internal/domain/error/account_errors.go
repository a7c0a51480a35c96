// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrMissingAccountName is returned when an account is created without a name.
	ErrMissingAccountName = errors.New("account name is required")

	// ErrInvalidAccountOrder is returned when a reorder request does not
	// cover the active accounts exactly.
	ErrInvalidAccountOrder = errors.New("invalid account order")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound     AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountType  AccountErrorCode = "ACC-010002"
	ErrCodeMissingAccountName  AccountErrorCode = "ACC-010003"
	ErrCodeInvalidAccountOrder AccountErrorCode = "ACC-010004"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
