package errors

import (
	"errors"
	"fmt"
	"strings"
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

// ValidationError represents a single field validation error
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors groups the field-level failures of one request
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		if fe.Field != "" {
			parts = append(parts, fe.Field+": "+fe.Message)
		} else {
			parts = append(parts, fe.Message)
		}
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors.
// Code lets API consumers branch without parsing the message.
type AuthorizationError struct {
	Code    string
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthorizationError
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Authorization codes
const (
	CodeAccessDenied           = "ACCESS_DENIED"
	CodeInsufficientPermission = "INSUFFICIENT_PERMISSIONS"
	CodeAdminRequired          = "ADMIN_REQUIRED"
	CodeParticipantRequired    = "PARTICIPANT_REQUIRED"
)

// Entity Not Found Errors
var (
	ErrClientProjectNotFound  = &NotFoundError{Entity: "project"}
	ErrCatalogProjectNotFound = &NotFoundError{Entity: "catalog project"}
	ErrMilestoneNotFound      = &NotFoundError{Entity: "milestone"}
	ErrFeedbackNotFound       = &NotFoundError{Entity: "feedback"}
	ErrFileNotFound           = &NotFoundError{Entity: "file"}
	ErrTeamMemberNotFound     = &NotFoundError{Entity: "team member"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
)

// Authorization Errors
var (
	ErrAccessDenied            = &AuthorizationError{Code: CodeAccessDenied, Message: "access denied"}
	ErrInsufficientPermissions = &AuthorizationError{Code: CodeInsufficientPermission, Message: "insufficient permissions"}
	ErrAdminRequired           = &AuthorizationError{Code: CodeAdminRequired, Message: "admin access required"}
	ErrParticipantRequired     = &AuthorizationError{Code: CodeParticipantRequired, Message: "only the client or team members can perform this action"}
)

// Authentication Errors
var (
	ErrMissingToken  = &AuthenticationError{Message: "access token required"}
	ErrInvalidToken  = &AuthenticationError{Message: "invalid or expired token"}
	ErrInactiveUser  = &AuthenticationError{Message: "user not found or inactive"}
	ErrMissingCaller = &AuthenticationError{Message: "authenticated caller missing from request context"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrSlugExists              = errors.New("catalog project with this slug already exists")
)

// Configuration Errors
var (
	ErrUnknownAttachmentDriver = &ConfigurationError{Message: "unknown attachments driver"}
	ErrS3BucketRequired        = &ConfigurationError{Message: "S3_BUCKET is required for the s3 attachments driver"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
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

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// FieldErrors returns the field-level errors carried by err, if any
func FieldErrors(err error) []*ValidationError {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return []*ValidationError{validationErr}
	}
	return nil
}

// AuthorizationCode returns the code of an AuthorizationError, or "" when err is not one
func AuthorizationCode(err error) string {
	var authzErr *AuthorizationError
	if errors.As(err, &authzErr) {
		return authzErr.Code
	}
	return ""
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
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
func NewAuthorizationError(code, message string) error {
	return &AuthorizationError{Code: code, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
