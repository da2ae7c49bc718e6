package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("session expired")
	ErrTokenInvalid       = errors.New("invalid session")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Event errors
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventAlreadyExists = errors.New("event with this name or slug already exists")
	ErrEventInactive      = errors.New("event is not open for registration")
)

// Registration errors
var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrDuplicateRegistration = errors.New("a registration for this event with this email already exists")
	ErrParticipantNotFound   = errors.New("participant not found")
	ErrLeaderRemoval         = errors.New("team leader cannot be removed, delete the whole registration instead")
	ErrSoloRemoval           = errors.New("participants of an individual registration cannot be removed")
	ErrTeamFloor             = errors.New("a team must keep at least 2 members, delete the whole registration instead")
)

// Startup errors
var (
	ErrStartupNotFound      = errors.New("startup not found")
	ErrStartupAlreadyExists = errors.New("startup with this slug already exists")
)

// Incubation errors
var (
	ErrApplicationNotFound = errors.New("incubation application not found")
	ErrDuplicateApplication = errors.New(
		"an application from this email is already pending review")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// NewValidationError creates an error carrying a rule-specific message that
// still matches ErrValidationFailed with errors.Is
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
