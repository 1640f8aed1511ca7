package bootstrap

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/SscSPs/budget_master_backend/internal/platform/logging"
	"github.com/SscSPs/budget_master_backend/pkg/database"
)

//go:embed migrations
var migrationsFS embed.FS

func migrationsDir(driver database.Driver) string {
	if driver == database.DriverPostgres {
		return "migrations/postgres"
	}
	return "migrations/sqlite"
}

// Migrate applies the embedded schema to the store described by cfg.
// It reports whether any migration was applied.
func Migrate(ctx context.Context, cfg database.Config) (bool, error) {
	logger := logging.FromContext(ctx)

	// migrate closes the handle it is given, so it gets its own
	db, err := database.OpenDB(ctx, cfg)
	if err != nil {
		return false, fmt.Errorf("failed to open database for migrations: %w", err)
	}

	var driver migratedb.Driver
	switch cfg.Driver {
	case database.DriverPostgres:
		driver, err = pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	default:
		driver, err = sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	}
	if err != nil {
		_ = db.Close()
		return false, fmt.Errorf("could not create %s driver instance for migrations: %w", cfg.Driver, err)
	}

	source, err := iofs.New(migrationsFS, migrationsDir(cfg.Driver))
	if err != nil {
		_ = driver.Close()
		return false, fmt.Errorf("could not read embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(cfg.Driver), driver)
	if err != nil {
		_ = driver.Close()
		return false, fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Debug("No new migrations to apply.")
		return false, nil
	}
	if upErr != nil {
		return false, fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	logger.Info("Database migrations applied successfully.", slog.String("driver", string(cfg.Driver)))
	return true, nil
}
