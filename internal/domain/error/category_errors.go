// Package error defines domain-specific errors for the Brisk Budget application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSubcategoryNotFound is returned when a subcategory is not found under its parent.
	ErrSubcategoryNotFound = errors.New("subcategory not found")

	// ErrSystemCategory is returned when attempting to delete a system category.
	ErrSystemCategory = errors.New("cannot delete system category")

	// ErrCategoryNameExists is returned when a name collides within the flat category namespace.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrMissingReplacementCategory is returned when a delete request omits the replacement.
	ErrMissingReplacementCategory = errors.New("replacement category required")

	// ErrMissingCategoryName is returned when a category is created without a name.
	ErrMissingCategoryName = errors.New("category name is required")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNotFound           CategoryErrorCode = "CAT-010001"
	ErrCodeSubcategoryNotFound        CategoryErrorCode = "CAT-010002"
	ErrCodeMissingReplacementCategory CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryName        CategoryErrorCode = "CAT-010004"

	// Conflict errors (02XXXX)
	ErrCodeSystemCategory     CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryNameExists CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
