// Package main is the entry point for the event-ticket-cli application.
// It registers the operational sub-commands (migrate, create-admin) and
// executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/dannykhan02/Ticketing-system/cmd/event-ticket-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "event-ticket-cli",
		Short: "Operational CLI for the event ticketing service",
		Long: `event-ticket-cli is a command-line tool for operating the event
ticketing service. It runs database migrations and bootstraps the first
admin account so the REST API can be administered from day one.`,
	}

	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}
	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
