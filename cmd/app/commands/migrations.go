package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/artfolio/gallery/internal/app"
	"github.com/artfolio/gallery/internal/config"
)

// RunMigrations applies all pending schema migrations for the configured
// database driver. Applying an already-migrated database is not an error.
func RunMigrations() error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	source := migrationSource(cfg.DBDriver)
	logger.Info("running database migrations",
		slog.String("driver", cfg.DBDriver),
		slog.String("source", source),
	)

	m, err := migrate.New(source, cfg.DBConnectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("no pending migrations")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("migrations applied")
	}
	return nil
}

// migrationSource maps the database driver to its migration directory.
func migrationSource(driver string) string {
	if driver == "mysql" {
		return "file://migrations/mysql"
	}
	return "file://migrations/postgresql"
}
