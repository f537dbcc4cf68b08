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
	Context string // Additional context like "with this email"
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

// ConflictError represents a request that is valid but not allowed in the current state
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
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

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProfileNotFound         = &NotFoundError{Entity: "profile"}
	ErrTrackingCodeNotFound    = &NotFoundError{Entity: "tracking code"}
	ErrReferralNotFound        = &NotFoundError{Entity: "referral"}
	ErrLeadNotFound            = &NotFoundError{Entity: "lead"}
	ErrCRMContactNotFound      = &NotFoundError{Entity: "crm contact"}
	ErrCommissionNotFound      = &NotFoundError{Entity: "commission"}
	ErrTicketNotFound          = &NotFoundError{Entity: "ticket"}
	ErrSeoPageNotFound         = &NotFoundError{Entity: "seo landing page"}
	ErrCampaignNotFound        = &NotFoundError{Entity: "campaign"}
	ErrPageRestrictionNotFound = &NotFoundError{Entity: "page restriction"}
)

// Already Exists Errors
var (
	ErrProfileExists         = &AlreadyExistsError{Entity: "profile", Context: "with this email"}
	ErrVanityCodeTaken       = &AlreadyExistsError{Entity: "tracking code", Context: "with this value"}
	ErrReferralExists        = &AlreadyExistsError{Entity: "referral", Context: "for this email"}
	ErrSeoPageExists         = &AlreadyExistsError{Entity: "seo landing page", Context: "with this slug"}
	ErrPageRestrictionExists = &AlreadyExistsError{Entity: "page restriction", Context: "for this path"}
)

// Business Logic Errors
var (
	ErrVanityCodeAlreadySet    = &ConflictError{Message: "vanity code has already been set and cannot be changed"}
	ErrInvalidStatusTransition = &ConflictError{Message: "invalid status transition"}
	ErrCampaignNotDraft        = &ConflictError{Message: "campaign is no longer a draft"}
	ErrTicketClosed            = &ConflictError{Message: "ticket is closed"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrProviderNotConfigured   = errors.New("provider is not configured")
	ErrEmptyGeneration         = errors.New("model returned an empty response")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrMissingIdentity    = &AuthenticationError{Message: "authenticated profile not found in context"}
	ErrInvalidSignature   = &AuthenticationError{Message: "invalid webhook signature"}
)

// Authorization Errors
var (
	ErrForbidden           = &AuthorizationError{Message: "you do not have access to this resource"}
	ErrStaffOnly           = &AuthorizationError{Message: "only staff can perform this action"}
	ErrAssigneeNotStaff    = &AuthorizationError{Message: "assignee must be a staff member"}
	ErrAssigneeNotPreparer = &AuthorizationError{Message: "assignee must be a tax preparer"}
)

// Configuration Errors
var (
	ErrGenAINotConfigured     = &ConfigurationError{Message: "GENAI_API_KEY environment variable not set"}
	ErrTranslateNotConfigured = &ConfigurationError{Message: "TRANSLATE_API_KEY environment variable not set"}
	ErrWebhookNotConfigured   = &ConfigurationError{Message: "PAYMENT_WEBHOOK_SECRET environment variable not set"}
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

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
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

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
