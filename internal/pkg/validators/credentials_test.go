//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Phone    string `validate:"phoneValidation"`
	Password string `validate:"passwordValidation"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("phoneValidation", PhoneValidation))
	require.NoError(t, validate.RegisterValidation("passwordValidation", PasswordValidation))
	return validate
}

func TestPhoneValidation(t *testing.T) {
	validate := newValidator(t)

	valid := credentials{Phone: "+254712345678", Password: "secret123"}
	assert.NoError(t, validate.Struct(valid))

	invalid := credentials{Phone: "not-a-phone", Password: "secret123"}
	assert.Error(t, validate.Struct(invalid))
}

func TestPasswordValidation(t *testing.T) {
	validate := newValidator(t)

	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"letters and digits", "secret123", true},
		{"too short", "ab1", false},
		{"digits only", "12345678", false},
		{"letters only", "abcdefgh", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(credentials{Phone: "+254712345678", Password: tt.password})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
