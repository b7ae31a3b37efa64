package commands

import (
	"fmt"
	"os"

	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// databaseSettingsFromEnv reads the connection settings the commands need
// without requiring the full REST config file.
func databaseSettingsFromEnv() (*config.DatabaseSettings, error) {
	settings := &config.DatabaseSettings{
		Type: os.Getenv("DATABASE_TYPE"),
		DSN:  os.Getenv("DATABASE_URL"),
		Name: os.Getenv("DATABASE_NAME"),
	}
	if settings.Type == "" {
		settings.Type = config.PostgresDbType
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
