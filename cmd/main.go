package main

import (
	"fmt"
	"os"

	"healthcare-portal/cmd/bootstrap"
	"healthcare-portal/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portal",
		Short:         "Healthcare portal API",
		Long:          "Patients submit health concerns, doctors respond with prescriptions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())

	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Run the application
	app.Run()
	return nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back the PostgreSQL schema",
		Long: `Apply (up, the default) or roll back (down) the embedded SQL migrations
against the database configured by DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME.

Example:
  portal migrate
  portal migrate down`,
		ValidArgs: []string{"up", "down"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}

			if direction == "down" {
				return database.MigrateDown(cfg.DB)
			}
			return database.MigrateUp(cfg.DB)
		},
	}
}
