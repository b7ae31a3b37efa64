package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StorageSettings holds media storage configuration for QR code images and
// event artwork. The local backend writes under Directory; the azure
// backend uploads to the named blob container.
type StorageSettings struct {
	Backend          string `mapstructure:"backend" validate:"required,oneof=local azure"`
	Directory        string `mapstructure:"directory"`
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	switch s.Backend {
	case LocalStorageBackend:
		if s.Directory == "" {
			return fmt.Errorf("directory is required for local storage")
		}
	case AzureStorageBackend:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("connection string and container name are required for azure storage")
		}
	}

	return nil
}
