package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"movie-booking/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLIface is the slice of *sqlx.DB the repositories depend on.
type SQLIface interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	Rebind(query string) string
	DriverName() string
	PingContext(ctx context.Context) error
	Close() error
}

// driverNames maps config drivers to registered database/sql driver names.
var driverNames = map[string]string{
	utils.DriverSQLite:   "sqlite",
	utils.DriverPostgres: "pgx",
}

// InitDB opens the configured database, verifies it and applies pending migrations.
func InitDB(config utils.DatabaseConfig) (SQLIface, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverNames[config.Driver], dataSourceName(config))
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.Driver, err)
	}

	if config.Driver == utils.DriverSQLite {
		// One shared connection; every statement is serialized through it.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(config.MaxConns)
		db.SetMaxIdleConns(config.MaxConns)
		db.SetConnMaxLifetime(30 * time.Minute)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	if err := Migrate(db.DB, config.Driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func dataSourceName(config utils.DatabaseConfig) string {
	if config.Driver == utils.DriverPostgres {
		return config.DSN
	}

	return "file:" + config.Path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_time_format=sqlite"
}
