// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Storage domain errors.
var (
	// ErrCollectionRead is returned when a collection file cannot be read or parsed.
	ErrCollectionRead = errors.New("failed to read collection")

	// ErrCollectionWrite is returned when a collection file cannot be written.
	ErrCollectionWrite = errors.New("failed to write collection")

	// ErrDanglingTransfer is returned when the second half of a two-file
	// transfer write fails, leaving an unpaired transfer transaction behind.
	// The first write is not rolled back; operators should repair by hand.
	ErrDanglingTransfer = errors.New("transfer pair left dangling after partial write")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	// IO errors (03XXXX)
	ErrCodeCollectionRead   StorageErrorCode = "STO-030001"
	ErrCodeCollectionWrite  StorageErrorCode = "STO-030002"
	ErrCodeDanglingTransfer StorageErrorCode = "STO-030003"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
