package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")
	ErrNotLoggedIn        = errors.New("no user is logged in")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPassword  = errors.New("invalid password format")
	ErrInvalidPhone     = errors.New("invalid phone number format")
	ErrInvalidRole      = errors.New("invalid role")
	ErrBadRequest       = errors.New("bad request")
)

// Registration uniqueness errors. The messages are user-facing and match
// what the portal shows on duplicate registration attempts.
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRollNumberExists   = errors.New("roll number already exists")
	ErrEmployeeIDExists   = errors.New("employee ID already exists")
	ErrHRIDExists         = errors.New("HR ID already exists")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidCGPA     = errors.New("semester CGPA must be greater than 0 and at most 10")
	ErrInvalidResume   = errors.New("resume must be a PDF file")
)

// Company and job errors
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrOfficerNotFound = errors.New("officer not found")
	ErrJobNotFound     = errors.New("job not found")
)

// Application errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrApplicationResolved = errors.New("application has already been resolved")
	ErrInvalidStatus       = errors.New("invalid application status")
)

// NewResourceNotFoundError creates a custom not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a custom conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a custom bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// IsNotFound reports whether err is any of the entity not-found errors
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrCompanyNotFound) ||
		errors.Is(err, ErrOfficerNotFound) ||
		errors.Is(err, ErrJobNotFound) ||
		errors.Is(err, ErrApplicationNotFound)
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// NewCustomError creates a CustomError with an underlying error
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

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
