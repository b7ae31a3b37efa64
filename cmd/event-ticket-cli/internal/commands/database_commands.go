package commands

import (
	"fmt"

	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence"
	"github.com/spf13/cobra"
)

// InitDatabaseCommands registers the database maintenance commands.
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database if needed and run schema migrations",
		RunE:  runMigrate,
	}

	rootCmd.AddCommand(migrateCmd)
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}

	settings, err := databaseSettingsFromEnv()
	if err != nil {
		return fmt.Errorf("invalid database settings: %w", err)
	}

	// NewDBConnection provisions the database and migrates the schema.
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer func() { _ = persistence.CloseDB(db) }()

	log.Info("Database schema is up to date")
	return nil
}
