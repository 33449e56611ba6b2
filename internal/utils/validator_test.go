// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

func TestStrongPassword(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"secret1234", true},
		{"a1b2c3d4", true},
		{"short1", false},
		{"lettersonly", false},
		{"1234567890", false},
		{"", false},
	}

	for _, tc := range cases {
		err := ValidateStruct(&passwordFixture{Password: tc.password})
		if tc.valid {
			assert.NoError(t, err, tc.password)
		} else {
			assert.Error(t, err, tc.password)
		}
	}
}

func TestGetValidationErrors(t *testing.T) {
	type fixture struct {
		Email string `validate:"required,email"`
		Title string `validate:"min=3"`
	}

	err := ValidateStruct(&fixture{Email: "not-an-email", Title: "ab"})
	require.Error(t, err)

	validationErrors := GetValidationErrors(err)
	require.Len(t, validationErrors, 2)
	assert.Equal(t, "email", validationErrors[0].Field)
	assert.Equal(t, "Invalid email format", validationErrors[0].Message)
	assert.Equal(t, "title", validationErrors[1].Field)
}
