package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "print job"}
	assert.Equal(t, "print job not found", err.Error())
	assert.True(t, errors.Is(err, ErrPrintJobNotFound))
	assert.False(t, errors.Is(err, ErrGeometryJobNotFound))
}

func TestNotFoundErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to get print job: %w", ErrPrintJobNotFound)
	assert.True(t, errors.Is(wrapped, ErrPrintJobNotFound))
	assert.True(t, IsNotFound(wrapped))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "organization already exists with this name", ErrOrganizationExists.Error())
	assert.Equal(t, "link already exists with this slug", ErrLinkExists.Error())
	assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrUserExists)))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("thickness", "must be at most 8")
	assert.Equal(t, "validation error: thickness - must be at most 8", err.Error())
	assert.True(t, IsValidation(err))

	bare := NewValidationError("", "parameters must be a JSON object")
	assert.Equal(t, "validation error: parameters must be a JSON object", bare.Error())
}

func TestAuthErrorClassification(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(ErrInvalidApiKey))
	assert.False(t, IsAuthorization(ErrInvalidApiKey))
	assert.True(t, IsAuthorization(ErrInsufficientScope))
	assert.True(t, IsAuthorization(ErrForbidden))
}
