package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OAuthSettings holds Google OAuth client configuration.
type OAuthSettings struct {
	GoogleClientID     string `mapstructure:"google_client_id" validate:"required"`
	GoogleClientSecret string `mapstructure:"google_client_secret" validate:"required"`
	RedirectURL        string `mapstructure:"redirect_url" validate:"required,url"`
}

// Validate checks that all fields in OAuthSettings are valid
func (s *OAuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for OAuthSettings: %w", err)
	}

	return nil
}
