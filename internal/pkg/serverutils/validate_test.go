package serverutils

import (
	"testing"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequestSignup(t *testing.T) {
	assert.NoError(t, ValidateRequest(dto.SignupRequest{Email: "a@x.com", Password: "pw"}))

	err := ValidateRequest(dto.SignupRequest{Email: "not-an-email", Password: "pw"})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "email must be a valid email address", appErr.Detail)

	err = ValidateRequest(dto.SignupRequest{Email: "a@x.com"})
	require.Error(t, err)
	appErr, ok = err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "password is required", appErr.Detail)
}

func TestValidateRequestNoteTitle(t *testing.T) {
	assert.NoError(t, ValidateRequest(dto.CreateNoteRequest{Title: "t"}))

	err := ValidateRequest(dto.CreateNoteRequest{Content: "body only"})
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "title is required", appErr.Detail)
}
