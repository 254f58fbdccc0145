package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Name            string `validate:"required,notblank"`
	UserType        string `validate:"required,oneof=patient doctor"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&accountForm{
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Name:            "Jane",
		UserType:        "patient",
	})
	assert.NoError(t, err)
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&accountForm{
		Email:           "not-an-email",
		Password:        "123",
		ConfirmPassword: "456",
		Name:            "   ",
		UserType:        "nurse",
	})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, map[string]string{
		"Email":           "Email must be a valid email address",
		"Password":        "Password must be at least 6 characters",
		"ConfirmPassword": "ConfirmPassword must match Password",
		"Name":            "Name is required",
		"UserType":        "UserType must be one of: patient, doctor",
	}, formatted)
}

func TestCustomValidator_FormatIgnoresOtherErrors(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.FormatValidationErrors(errors.New("boom")))
}
