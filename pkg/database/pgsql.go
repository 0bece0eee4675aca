package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SscSPs/rental_management_app/migrations"
)

// NewPgxPool creates a new PostgreSQL connection pool. With pingCheck the
// pool is verified before it is returned.
func NewPgxPool(ctx context.Context, databaseURL string, pingCheck bool, logger *slog.Logger) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	// pgxpool.ParseConfig also honours PGHOST, PGUSER and friends.
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if pingCheck {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
	}

	logger.Info("Database connection pool established", slog.Bool("ping_checked", pingCheck))
	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool, logger *slog.Logger) {
	if pool == nil {
		return
	}
	pool.Close()
	if logger != nil {
		logger.Info("PostgreSQL connection pool closed")
	}
}

// RunMigrations applies every pending "up" migration. The embedded
// migrations are used unless migrationsPath names a directory on disk.
func RunMigrations(databaseURL, migrationsPath string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	// A plain database/sql handle through the pgx stdlib driver, as migrate expects.
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

	var m *migrate.Migrate
	if migrationsPath != "" {
		m, err = migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	} else {
		source, serr := iofs.New(migrations.FS, ".")
		if serr != nil {
			return fmt.Errorf("could not open embedded migrations: %w", serr)
		}
		m, err = migrate.NewWithInstance("iofs", source, "postgres", driver)
	}
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}
	if dirty {
		return fmt.Errorf("database is dirty at migration version %d", version)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply", slog.Uint64("version", uint64(version)))
	} else {
		logger.Info("Database migrations applied successfully", slog.Uint64("version", uint64(version)))
	}
	return nil
}
