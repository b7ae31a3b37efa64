package persistence

import (
	"fmt"
	"strings"

	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence/models"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a database connection based on the configured type
// and migrates the schema
func NewDBConnection(settings *config.DatabaseSettings) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.EventModel{},
		&models.TicketTypeModel{},
		&models.TicketModel{},
		&models.ScanModel{},
		&models.TransactionModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return db, nil
}

func connectPostgres(settings *config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		if settings.Name == "" || !strings.Contains(err.Error(), "does not exist") {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		// The target database is missing. Connect to the maintenance
		// database, create it and retry.
		maintenanceDSN := strings.Replace(settings.DSN, "dbname="+settings.Name, "dbname=postgres", 1)
		adminDB, adminErr := gorm.Open(postgres.Open(maintenanceDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if adminErr != nil {
			return nil, fmt.Errorf("failed to connect to maintenance database: %w", adminErr)
		}
		if createErr := adminDB.Exec("CREATE DATABASE " + settings.Name).Error; createErr != nil {
			return nil, fmt.Errorf("failed to create database %s: %w", settings.Name, createErr)
		}
		if sqlDB, dbErr := adminDB.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		db, err = gorm.Open(postgres.Open(settings.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
	}
	return db, nil
}

func connectSQLite(settings *config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}
	return db, nil
}

// CloseDB closes the underlying sql connection of a gorm database handle
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to retrieve sql database handle: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
