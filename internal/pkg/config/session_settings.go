package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SessionSettings holds server-side session storage configuration.
// Sessions back the OAuth login flow; state tokens never reach the client
// unprotected.
type SessionSettings struct {
	Directory string `mapstructure:"directory" validate:"required"`
	Secret    string `mapstructure:"secret" validate:"required,min=32"`
}

// Validate checks that all fields in SessionSettings are valid
func (s *SessionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionSettings: %w", err)
	}

	return nil
}

// ApplyDefaults fills the session directory with the conventional location.
func (s *SessionSettings) ApplyDefaults() {
	if s.Directory == "" {
		s.Directory = "/tmp/flask_sessions"
	}
}
