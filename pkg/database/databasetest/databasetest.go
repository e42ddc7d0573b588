// Package databasetest opens throwaway migrated SQLite databases for tests.
package databasetest

import (
	"path/filepath"
	"testing"

	"movie-booking/pkg/database"
	"movie-booking/pkg/utils"
)

// Config returns a sqlite config pointing into t.TempDir().
func Config(t testing.TB) utils.DatabaseConfig {
	t.Helper()
	return utils.DatabaseConfig{
		Driver: utils.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "booking.db"),
	}
}

// NewSQLite opens a migrated and seeded database that is closed on cleanup.
func NewSQLite(t testing.TB) database.SQLIface {
	t.Helper()

	db, err := database.InitDB(Config(t))
	if err != nil {
		t.Fatalf("init test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}
