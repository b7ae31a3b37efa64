package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PaystackSettings holds Paystack API credentials.
type PaystackSettings struct {
	SecretKey string `mapstructure:"secret_key"`
	BaseURL   string `mapstructure:"base_url"`
}

// MpesaSettings holds M-Pesa Daraja API credentials.
type MpesaSettings struct {
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
	ShortCode      string `mapstructure:"short_code"`
	PassKey        string `mapstructure:"pass_key"`
	BaseURL        string `mapstructure:"base_url"`
	CallbackURL    string `mapstructure:"callback_url"`
}

// PaymentSettings groups the configured payment providers.
type PaymentSettings struct {
	Paystack PaystackSettings `mapstructure:"paystack"`
	Mpesa    MpesaSettings    `mapstructure:"mpesa"`
}

// Validate checks that at least one payment provider is configured.
func (s *PaymentSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PaymentSettings: %w", err)
	}

	if s.Paystack.SecretKey == "" && s.Mpesa.ConsumerKey == "" {
		return fmt.Errorf("at least one payment provider must be configured")
	}

	return nil
}
