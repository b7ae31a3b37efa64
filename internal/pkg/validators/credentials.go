package validators

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts E.164-style numbers with an optional leading plus,
// seven to fifteen digits.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)

// PhoneValidation validates that the field is a plausible phone number.
func PhoneValidation(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// PasswordValidation requires at least eight characters mixing letters and
// digits; all-numeric and all-alphabetic passwords are rejected.
func PasswordValidation(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
