package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds JWT signing and token lifetime configuration.
type AuthSettings struct {
	JWTSecret      string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetime  time.Duration `mapstructure:"token_lifetime"`
	ResetTokenSalt string        `mapstructure:"reset_token_salt"`
	ResetTokenAge  time.Duration `mapstructure:"reset_token_age"`
	QRCodeSalt     string        `mapstructure:"qr_code_salt"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}

// ApplyDefaults fills unset lifetimes with the values the service ships with.
func (s *AuthSettings) ApplyDefaults() {
	if s.TokenLifetime == 0 {
		s.TokenLifetime = 30 * 24 * time.Hour
	}
	if s.ResetTokenSalt == "" {
		s.ResetTokenSalt = "reset-password-salt"
	}
	if s.ResetTokenAge == 0 {
		s.ResetTokenAge = time.Hour
	}
	if s.QRCodeSalt == "" {
		s.QRCodeSalt = "qr-code"
	}
}
