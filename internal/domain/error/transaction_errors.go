// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the account's ledger.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not a valid decimal.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrMissingTransactionDate is returned when the transaction date is missing.
	ErrMissingTransactionDate = errors.New("transaction date is required")

	// ErrMissingTransactionPayee is returned when the transaction payee is missing.
	ErrMissingTransactionPayee = errors.New("transaction payee is required")

	// ErrInvalidImportPayload is returned when a bulk import payload is not a list of records.
	ErrInvalidImportPayload = errors.New("invalid transactions array")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeMissingTransactionDate   TransactionErrorCode = "TXN-010003"
	ErrCodeMissingTransactionPayee  TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidImportPayload     TransactionErrorCode = "TXN-010005"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
