package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Registration / application errors
var (
	ErrDuplicateIdentity    = errors.New("student with this email or roll number already exists")
	ErrDuplicateApplication = errors.New("already applied for this job")
	ErrDeadlinePassed       = errors.New("application deadline has passed")
	ErrInvalidStatus        = errors.New("invalid status")
)

// Resource lookups
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrAdminNotFound       = errors.New("admin user not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobNotFound         = errors.New("job not found or not accepting applications")
	ErrApplicationNotFound = errors.New("application not found")
)

// Is returns whether err matches target or any of the extra errors.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError carries an underlying sentinel plus a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewNotFoundError wraps ErrResourceNotFound with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewBadRequestError wraps ErrBadRequest with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// FieldViolation names one invalid input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError aggregates per-field input violations. It unwraps to
// ErrValidationFailed so generic mapping still applies.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error()
}

// Unwrap implements errors.Unwrap.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Add appends a violation and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
	return e
}

// HasViolations reports whether any field failed.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
