package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg, err := setup()
		if err != nil {
			return err
		}
		return runMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, migrateUp)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations, one step unless a count is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("steps must be a positive integer, got %q", args[0])
			}
			steps = n
		}

		logger, cfg, err := setup()
		if err != nil {
			return err
		}
		return runMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, func(m *migrate.Migrate) error {
			return m.Steps(-steps)
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, cfg, err := setup()
		if err != nil {
			return err
		}
		return runMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, func(m *migrate.Migrate) error {
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func migrateUp(m *migrate.Migrate) error {
	return m.Up()
}

// runMigrations opens a database/sql connection through the pgx stdlib driver,
// runs step against it and closes everything. ErrNoChange is not an error.
func runMigrations(logger *slog.Logger, databaseURL, migrationsPath string, step func(*migrate.Migrate) error) error {
	// Open a temporary standard sql.DB connection for migrations
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	stepErr := step(m)

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	switch {
	case errors.Is(stepErr, migrate.ErrNoChange):
		logger.Info("No new migrations to apply.")
	case stepErr != nil:
		return fmt.Errorf("failed to apply migrations: %w", stepErr)
	default:
		logger.Info("Database migrations applied successfully.", slog.String("source", migrationsPath))
	}
	return nil
}
