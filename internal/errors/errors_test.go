package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "lead"}
		assert.Equal(t, "lead not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "lead"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "ticket"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLeadNotFound, ErrLeadNotFound))
		assert.False(t, errors.Is(ErrLeadNotFound, ErrTicketNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrLeadNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrProfileNotFound)))
		assert.False(t, IsNotFound(ErrVanityCodeAlreadySet))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "profile", Context: "with this email"}
		assert.Equal(t, "profile already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "profile"}
		assert.Equal(t, "profile already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrVanityCodeTaken))
		assert.False(t, IsAlreadyExists(ErrLeadNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("email", "is required")
		assert.Equal(t, "validation error: email - is required", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("", "bad payload")
		assert.Equal(t, "validation error: bad payload", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	assert.True(t, IsConflict(ErrVanityCodeAlreadySet))
	assert.True(t, IsConflict(fmt.Errorf("lead: %w", ErrInvalidStatusTransition)))
	assert.False(t, IsConflict(ErrLeadNotFound))
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthentication(ErrForbidden))
	assert.True(t, IsAuthorization(ErrForbidden))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrGenAINotConfigured))
	assert.Equal(t, "GENAI_API_KEY environment variable not set", ErrGenAINotConfigured.Error())
	assert.False(t, IsConfiguration(errors.New("plain")))
}
