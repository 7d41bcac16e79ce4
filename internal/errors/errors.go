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

// ValidationError represents a persistence-layer constraint violation
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

// SyncError represents an identity reconciliation failure
type SyncError struct {
	Message string
}

func (e *SyncError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrItemNotFound         = &NotFoundError{Entity: "item"}
)

// Authentication and Authorization Errors
var (
	// ErrInvalidToken covers malformed, corrupted, expired and rejected tokens.
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
	// ErrUnauthenticated means no credential was presented at all.
	ErrUnauthenticated = &AuthenticationError{Message: "authentication required"}
	// ErrAuthServiceUnavailable distinguishes a verification-dependency outage
	// from a bad credential; callers must not clear stored credentials on it.
	ErrAuthServiceUnavailable = errors.New("authentication service unavailable")

	ErrInsufficientPermissions = &AuthorizationError{Message: "insufficient permissions"}
	ErrOrganizationRequired    = &AuthorizationError{Message: "organization required"}
)

// Identity Sync Errors
var (
	// ErrOrganizationMismatch is raised when an explicit organization context
	// differs from the user's current organization; sync never silently
	// reassigns tenants.
	ErrOrganizationMismatch = errors.New("user belongs to a different organization")
)

// Request Errors
var (
	ErrParameterMissing        = errors.New("required parameter missing")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Platform Client Errors
var (
	ErrPlatformUnauthorized = errors.New("platform rejected credentials")
	ErrPlatformNotFound     = errors.New("platform resource not found")
	ErrPlatformRateLimited  = errors.New("platform rate limit exceeded")
	ErrPlatformAPI          = errors.New("platform API error")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
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

// IsSync checks if an error is a SyncError
func IsSync(err error) bool {
	var syncErr *SyncError
	return errors.As(err, &syncErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewSyncError wraps an underlying validation detail into a SyncError
func NewSyncError(format string, args ...interface{}) error {
	return &SyncError{Message: fmt.Sprintf(format, args...)}
}
