package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound  = &NotFoundError{Entity: "organization"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrApiKeyNotFound        = &NotFoundError{Entity: "api key"}
	ErrNamedGeometryNotFound = &NotFoundError{Entity: "named geometry"}
	ErrGeometryJobNotFound   = &NotFoundError{Entity: "geometry job"}
	ErrPrintJobNotFound      = &NotFoundError{Entity: "print job"}
	ErrInvitationNotFound    = &NotFoundError{Entity: "invitation"}
	ErrLinkNotFound          = &NotFoundError{Entity: "link"}
	ErrModelFileNotFound     = &NotFoundError{Entity: "model file"}
	ErrGcodeFileNotFound     = &NotFoundError{Entity: "gcode file"}
)

// Already Exists Errors
var (
	ErrOrganizationExists  = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrNamedGeometryExists = &AlreadyExistsError{Entity: "named geometry", Context: "with this name"}
	ErrLinkExists          = &AlreadyExistsError{Entity: "link", Context: "with this slug"}
)

// Business Logic Errors
var (
	ErrGeometryJobNotCompleted = errors.New("geometry job has not completed")
	ErrGeometryJobInProgress   = errors.New("geometry job is being processed")
	ErrNoPendingJobs           = errors.New("no pending geometry jobs")
	ErrPrintNotStarted         = errors.New("print has not been started")
	ErrPrintAlreadyStarted     = errors.New("print has already been started")
	ErrPrintAlreadyCompleted   = errors.New("print has already been completed")
	ErrPrintNotCompleted       = errors.New("print has not been completed")
	ErrDecisionNotAllowed      = errors.New("print is not awaiting an acceptance decision")
	ErrDecisionAlreadyMade     = errors.New("acceptance decision has already been recorded")
	ErrInvalidProgress         = errors.New("progress must be between 0 and 100")
	ErrInvitationExpired       = errors.New("invitation has expired")
	ErrInvitationUsed          = errors.New("invitation has already been used")
	ErrInvalidScope            = errors.New("invalid api key scope")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken        = &AuthenticationError{Message: "invalid token"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrInvalidApiKey       = &AuthenticationError{Message: "invalid api key"}
	ErrInsufficientScope   = &AuthorizationError{Message: "api key does not grant the required scope"}
	ErrForbidden           = &AuthorizationError{Message: "insufficient permissions"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
