package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionNotFound    = errors.New("session not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound           = errors.New("student not found")
	ErrEnrollmentNumberExists    = errors.New("enrollment number already exists")
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrMissingEnrollmentNumber   = errors.New("please enter enrollment number")
	ErrMissingCourse             = errors.New("please select a course")
	ErrInvalidEnrollmentSequence = errors.New("stored enrollment number has a malformed sequence suffix")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("invalid course selected")
)

// Fee errors
var (
	ErrInvalidPaymentAmount  = errors.New("payment amount must be greater than 0")
	ErrPaymentExceedsBalance = errors.New("amount exceeds remaining fees")
	ErrInvalidDiscount       = errors.New("discount must be between 0 and 100")
)

// Admin errors
var (
	ErrAdminNotFound         = errors.New("admin not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrPasswordMismatch      = errors.New("passwords do not match")
)

// Search errors
var (
	ErrNoSearchQuery = errors.New("please enter an enrollment number or name")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
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
