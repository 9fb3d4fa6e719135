package migrator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"

	"link-shortener/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrInvalidDirection = errors.New("direction must be 'up' or 'down'")
	ErrUnsupportedStore = errors.New("store driver has no migrations")
	ErrInvalidDSN       = errors.New("postgres dsn must be a postgres:// URL")
)

// Run applies the embedded migrations for driver in the given direction.
// Having nothing to apply is not an error.
func Run(log *slog.Logger, driver, dsn, table, direction string) error {
	const op = "storage.migrator.Run"

	if direction != DirectionUp && direction != DirectionDown {
		return fmt.Errorf("%s: %w", op, ErrInvalidDirection)
	}

	files, dir, err := source(driver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	databaseURL, err := DatabaseURL(driver, dsn, table)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	src, err := iofs.New(files, dir)
	if err != nil {
		return fmt.Errorf("%s: failed to open migration source: %w", op, err)
	}

	log.Info("initializing migrator",
		slog.String("driver", driver),
		slog.String("migration_table", table),
		slog.String("direction", direction),
	)

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("%s: failed to create migrator: %w", op, err)
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			log.Error("failed to close migration source", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			log.Error("failed to close database", slog.String("error", dbErr.Error()))
		}
	}()

	switch direction {
	case DirectionUp:
		log.Info("applying migrations up")
		err = m.Up()
	case DirectionDown:
		log.Info("applying migrations down")
		err = m.Down()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("%s: failed to apply migrations: %w", op, err)
	}

	return nil
}

// DatabaseURL builds the golang-migrate database URL for a store driver.
func DatabaseURL(driver, dsn, table string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3://" + withTable(dsn, table), nil
	case DriverPostgres:
		for _, prefix := range []string{"postgres://", "postgresql://"} {
			if rest, ok := strings.CutPrefix(dsn, prefix); ok {
				return "pgx5://" + withTable(rest, table), nil
			}
		}
		return "", ErrInvalidDSN
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedStore, driver)
	}
}

func source(driver string) (fs.FS, string, error) {
	switch driver {
	case DriverSQLite:
		return migrations.SQLite, "sqlite", nil
	case DriverPostgres:
		return migrations.Postgres, "postgres", nil
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedStore, driver)
	}
}

func withTable(dsn, table string) string {
	if table == "" {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "x-migrations-table=" + url.QueryEscape(table)
}
