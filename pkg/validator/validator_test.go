package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestSummarize_MissingRequired(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signup{Email: "a@b.co", Password: "secret1"})
	require.Error(t, err)

	message, detail := v.Summarize(err)
	assert.Equal(t, "Missing required fields", message)
	assert.Equal(t, "name is required", detail)
}

func TestSummarize_InvalidFormat(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signup{Name: "Asha", Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	message, detail := v.Summarize(err)
	assert.Equal(t, "Validation failed", message)
	assert.Equal(t, "email must be a valid email address; password must be at least 6 characters", detail)
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&signup{Name: "Asha", Email: "asha@example.com", Password: "secret1"}))
}
