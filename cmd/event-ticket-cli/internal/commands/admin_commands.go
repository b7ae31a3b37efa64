package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// InitAdminCommands registers the admin bootstrap commands.
func InitAdminCommands(rootCmd *cobra.Command) error {
	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE:  runCreateAdmin,
	}
	createAdminCmd.Flags().String("email", "", "Email address of the admin account")
	createAdminCmd.Flags().String("phone", "", "Phone number of the admin account")
	createAdminCmd.Flags().String("password", "", "Password of the admin account")
	if err := createAdminCmd.MarkFlagRequired("email"); err != nil {
		return err
	}
	if err := createAdminCmd.MarkFlagRequired("phone"); err != nil {
		return err
	}
	if err := createAdminCmd.MarkFlagRequired("password"); err != nil {
		return err
	}

	rootCmd.AddCommand(createAdminCmd)
	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	log, err := setupLogger()
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	password, _ := cmd.Flags().GetString("password")

	settings, err := databaseSettingsFromEnv()
	if err != nil {
		return fmt.Errorf("invalid database settings: %w", err)
	}

	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = persistence.CloseDB(db) }()

	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}

	if existing, _ := userRepo.GetByEmail(cmd.Context(), email); existing != nil {
		return fmt.Errorf("email %s is already registered", email)
	}

	admin := &users.User{
		ID:              uuid.NewString(),
		Email:           strings.ToLower(email),
		Role:            users.RoleAdmin,
		PhoneNumber:     phone,
		DateTimeCreated: time.Now(),
	}
	if err := admin.SetPassword(password); err != nil {
		return err
	}

	if err := userRepo.Create(cmd.Context(), admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Info("Admin account created: ", admin.Email)
	return nil
}
