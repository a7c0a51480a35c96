// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Transfer domain errors.
var (
	// ErrSameAccountTransfer is returned when a transfer's source and target accounts are the same.
	ErrSameAccountTransfer = errors.New("cannot transfer within the same account")

	// ErrAlreadyTransfer is returned when converting a transaction that is already a transfer.
	ErrAlreadyTransfer = errors.New("transaction is already a transfer")

	// ErrNotATransfer is returned when a transfer operation targets a plain transaction.
	ErrNotATransfer = errors.New("transaction is not a transfer")

	// ErrInvalidTransferAmount is returned when the transfer amount is not positive.
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
)

// TransferErrorCode defines error codes for transfer errors.
// Format: TRF-XXYYYY where XX is category and YYYY is specific error.
type TransferErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSameAccountTransfer   TransferErrorCode = "TRF-010001"
	ErrCodeInvalidTransferAmount TransferErrorCode = "TRF-010002"

	// Conflict errors (02XXXX)
	ErrCodeAlreadyTransfer TransferErrorCode = "TRF-020001"
	ErrCodeNotATransfer    TransferErrorCode = "TRF-020002"
)

// TransferError represents a transfer error with code and message.
type TransferError struct {
	Code    TransferErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransferError creates a new TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string, err error) *TransferError {
	return &TransferError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
