package errors

import (
	"net/http"
	"testing"

	"multipost/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrWorkspaceNotFound.WithDetails("id=123")
	wrapped := errors.Wrap(detailed, "rename")

	assert.ErrorIs(t, wrapped, ErrWorkspaceNotFound)
	assert.NotErrorIs(t, wrapped, ErrAccountNotFound)
	assert.Equal(t, "id=123", detailed.Details())
}

func TestBaseError_WithMessage(t *testing.T) {
	err := ErrValidation.WithMessage("name is required")

	assert.Equal(t, "name is required", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "invalid request", ErrValidation.Message())
}

func TestProviderExchangeError(t *testing.T) {
	cause := errors.New("401 Unauthorized")
	err := NewProviderExchangeError("tiktok", "Authorization code is expired.", http.StatusUnauthorized, cause)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Authorization code is expired.", appErr.Message())
	assert.Equal(t, "PROVIDER_EXCHANGE_FAILED", appErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, err.StatusCode())
	assert.ErrorIs(t, err, cause)
}

func TestPersistenceError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistenceError(cause, "upsert token")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "upsert token", err.Details())
}
