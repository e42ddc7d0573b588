package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"movie-booking/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies every pending up migration for driver. The migrate
// instance is not closed: closing it would close db.
func Migrate(db *sql.DB, driver string) error {
	mig, err := newMigrate(db, driver)
	if err != nil {
		return err
	}

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations: %w", err)
	}

	return nil
}

// Version returns the applied schema version and whether it is dirty.
func Version(db *sql.DB, driver string) (uint, bool, error) {
	mig, err := newMigrate(db, driver)
	if err != nil {
		return 0, false, err
	}

	return mig.Version()
}

func newMigrate(db *sql.DB, driver string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("error opening migrations for %s: %w", driver, err)
	}

	var instance migratedb.Driver
	switch driver {
	case utils.DriverSQLite:
		instance, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	case utils.DriverPostgres:
		instance, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating migrate driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}
