package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "milestone"}
		assert.Equal(t, "milestone not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrClientProjectNotFound, ErrMilestoneNotFound))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("load: %w", ErrClientProjectNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrClientProjectNotFound))
		assert.False(t, IsNotFound(ErrAccessDenied))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
		assert.Equal(t, "validation error: rating - must be between 1 and 5", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid body"}
		assert.Equal(t, "validation error: invalid body", err.Error())
	})

	t.Run("ValidationErrors aggregates fields", func(t *testing.T) {
		err := ValidationErrors{
			{Field: "title", Message: "is required"},
			{Field: "clientId", Message: "is required"},
		}
		assert.Equal(t, "validation failed: title: is required; clientId: is required", err.Error())
		assert.True(t, IsValidation(err))
		assert.Len(t, FieldErrors(fmt.Errorf("wrap: %w", err)), 2)
	})

	t.Run("single ValidationError exposes one field error", func(t *testing.T) {
		err := NewValidationError("status", "unknown value")
		assert.True(t, IsValidation(err))
		fields := FieldErrors(err)
		assert.Len(t, fields, 1)
		assert.Equal(t, "status", fields[0].Field)
	})

	t.Run("non validation errors", func(t *testing.T) {
		assert.False(t, IsValidation(ErrMilestoneNotFound))
		assert.Nil(t, FieldErrors(ErrMilestoneNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("access denied and insufficient permissions stay distinguishable", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrAccessDenied))
		assert.True(t, IsAuthorization(ErrInsufficientPermissions))
		assert.False(t, errors.Is(ErrAccessDenied, ErrInsufficientPermissions))
		assert.Equal(t, CodeAccessDenied, AuthorizationCode(ErrAccessDenied))
		assert.Equal(t, CodeInsufficientPermission, AuthorizationCode(fmt.Errorf("x: %w", ErrInsufficientPermissions)))
	})

	t.Run("AuthorizationCode of other errors is empty", func(t *testing.T) {
		assert.Equal(t, "", AuthorizationCode(ErrInvalidToken))
	})
}

func TestAuthenticationError(t *testing.T) {
	assert.True(t, IsAuthentication(ErrMissingToken))
	assert.True(t, IsAuthentication(NewAuthenticationError("expired")))
	assert.False(t, IsAuthentication(ErrAccessDenied))
	assert.Equal(t, "access token required", ErrMissingToken.Error())
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrS3BucketRequired))
	assert.True(t, IsConfiguration(NewConfigurationError("bad")))
	assert.False(t, IsConfiguration(ErrInvalidStatus))
}
