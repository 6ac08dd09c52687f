package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountNotApproved = errors.New("account pending approval")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrSelfDeletion     = errors.New("cannot delete own account")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Faculty errors
var (
	ErrFacultyNotFound      = errors.New("faculty member not found")
	ErrDuplicateKey         = errors.New("duplicate employee id or email")
	ErrFacultyHasRelations  = errors.New("faculty has related records and cannot be deleted")
	ErrExperienceMismatch   = errors.New("experience totals do not add up")
	ErrFacultyProfileNeeded = errors.New("no faculty profile linked to this account")
)

// Qualification and publication errors
var (
	ErrQualificationNotFound = errors.New("qualification not found")
	ErrPublicationNotFound   = errors.New("publication not found")
)

// File upload errors
var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file exceeds maximum size")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewDuplicateKeyError names the record already holding the conflicting value,
// so callers can tell the user who owns it.
func NewDuplicateKeyError(field, value, holder string) *CustomError {
	return &CustomError{
		Err:     ErrDuplicateKey,
		Message: field + " \"" + value + "\" is already registered for " + holder,
		Details: map[string]interface{}{"field": field, "holder": holder},
	}
}

// NewValidationError creates a validation failure with a message
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewForbiddenError creates a permission denied error with a message
func NewForbiddenError(message string) *CustomError {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}
