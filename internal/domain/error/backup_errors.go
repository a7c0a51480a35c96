// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Backup domain errors.
var (
	// ErrMalformedBackup is returned when a restore payload is not a readable zip archive.
	ErrMalformedBackup = errors.New("malformed backup archive")

	// ErrBackupMissingFile is returned when a restore payload lacks a required collection file.
	ErrBackupMissingFile = errors.New("backup missing required file")

	// ErrBackupInvalidJSON is returned when a backup entry contains invalid JSON.
	ErrBackupInvalidJSON = errors.New("backup contains invalid JSON")

	// ErrBackupWrite is returned when a backup archive cannot be written or unpacked.
	ErrBackupWrite = errors.New("failed to write backup")
)

// BackupErrorCode defines error codes for backup errors.
// Format: BKP-XXYYYY where XX is category and YYYY is specific error.
type BackupErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMalformedBackup   BackupErrorCode = "BKP-010001"
	ErrCodeBackupMissingFile BackupErrorCode = "BKP-010002"
	ErrCodeBackupInvalidJSON BackupErrorCode = "BKP-010003"

	// IO errors (03XXXX)
	ErrCodeBackupWrite BackupErrorCode = "BKP-030001"
)

// BackupError represents a backup error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
