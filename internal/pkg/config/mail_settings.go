package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MailSettings holds SMTP configuration for outgoing mail.
type MailSettings struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender" validate:"required,email"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}

	return nil
}
