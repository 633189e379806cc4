package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "email is required"},
		{Field: "name", Message: "name is required"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("submitting lead: %w", NewValidationError("validation failed"))

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "validation failed", ve.Message)
}

func TestValidationError_IsValidationError_WithOtherError(t *testing.T) {
	ve, ok := IsValidationError(errors.New("some other error"))
	assert.False(t, ok)
	assert.Nil(t, ve)
}

func TestRequestError_HTTPFailure(t *testing.T) {
	err := NewRequestError("submit lead", 503, nil)

	assert.False(t, err.IsNetwork())
	assert.Equal(t, "submit lead: unexpected status 503", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestRequestError_NetworkFailure(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewRequestError("login", 0, cause)

	assert.True(t, err.IsNetwork())
	assert.Contains(t, err.Error(), "login")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestRequestError_IsRequestError(t *testing.T) {
	var err error = fmt.Errorf("wrap: %w", NewRequestError("list orders", 401, nil))

	re, ok := IsRequestError(err)
	assert.True(t, ok)
	assert.Equal(t, 401, re.StatusCode)

	_, ok = IsRequestError(ErrNoSession)
	assert.False(t, ok)
}

func TestUnauthorizedError_IsUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError("missing bearer token")

	ue, ok := IsUnauthorizedError(err)
	assert.True(t, ok)
	assert.Equal(t, "missing bearer token", ue.Error())
}

func TestConflictError_IsConflictError(t *testing.T) {
	err := NewConflictError("email already registered")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "email already registered", ce.Message)

	_, ok = IsConflictError(errors.New("other"))
	assert.False(t, ok)
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "wrapper: underlying error", err.Error())
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
