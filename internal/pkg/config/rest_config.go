package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// RestConfig aggregates every setting the REST API needs.
type RestConfig struct {
	Port     string           `mapstructure:"port"`
	BaseURL  string           `mapstructure:"base_url"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Auth     AuthSettings     `mapstructure:"auth"`
	Mail     MailSettings     `mapstructure:"mail"`
	OAuth    OAuthSettings    `mapstructure:"oauth"`
	Session  SessionSettings  `mapstructure:"session"`
	Storage  StorageSettings  `mapstructure:"storage"`
	Payment  PaymentSettings  `mapstructure:"payment"`
}

// InitializeRestConfig loads the REST API configuration from a YAML file,
// applies environment overrides and validates the result.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&cfg)

	cfg.Auth.ApplyDefaults()
	cfg.Session.ApplyDefaults()
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides lets deployment environments override secrets and the
// listen port without editing the config file.
func applyEnvOverrides(cfg *RestConfig) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if baseURL := os.Getenv("APP_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Session.Secret = secret
	}
	if key := os.Getenv("PAYSTACK_SECRET_KEY"); key != "" {
		cfg.Payment.Paystack.SecretKey = key
	}
	if pass := os.Getenv("MAIL_PASSWORD"); pass != "" {
		cfg.Mail.Password = pass
	}
}

// Validate checks all nested settings.
func (c *RestConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Mail.Validate(); err != nil {
		return err
	}
	if err := c.OAuth.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.Payment.Validate()
}
