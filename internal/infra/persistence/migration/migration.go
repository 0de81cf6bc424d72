// Package migration applies the embedded SQL schema migrations with golang-migrate.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"addressbook/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const sourceName = "iofs"

// Up applies every pending migration. An up-to-date schema is not an error.
func Up(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return run(ctx, db, logger, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "failed to apply migrations")
		}

		return nil
	})
}

// Down reverts the given number of applied migrations.
func Down(ctx context.Context, db *sql.DB, logger *slog.Logger, steps int) error {
	if steps <= 0 {
		return errors.Errorf("steps must be positive, got %d", steps)
	}

	return run(ctx, db, logger, func(m *migrate.Migrate) error {
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return errors.Wrap(err, "failed to revert migrations")
		}

		return nil
	})
}

// Version reports the current schema version and whether the last migration left it dirty.
// A database without any applied migration reports version 0.
func Version(ctx context.Context, db *sql.DB, logger *slog.Logger) (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)

	err := run(ctx, db, logger, func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			version, dirty = 0, false

			return nil
		}

		return errors.Wrap(err, "failed to read migration version")
	})

	return version, dirty, err
}

// run borrows a single connection from the pool so closing the migrator leaves the pool open.
func run(ctx context.Context, db *sql.DB, logger *slog.Logger, fn func(m *migrate.Migrate) error) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to create migration source")
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance(sourceName, source, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if logger != nil && (srcErr != nil || dbErr != nil) {
			logger.Warn("Failed to close migrator", slog.Any("sourceError", srcErr), slog.Any("databaseError", dbErr))
		}
	}()

	if logger != nil {
		m.Log = &slogMigrateLogger{logger: logger}
	}

	return fn(m)
}

// slogMigrateLogger adapts slog to migrate.Logger.
type slogMigrateLogger struct {
	logger *slog.Logger
}

func (l *slogMigrateLogger) Printf(format string, v ...any) {
	l.logger.Info("migrate: " + fmt.Sprintf(format, v...))
}

func (l *slogMigrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
