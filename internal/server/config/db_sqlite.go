// Package config also owns database initialization and access to the
// global *sql.DB instance.
//
// The package:
//   - opens the local SQLite file (modernc.org/sqlite, pure Go driver);
//   - verifies the connection (Ping);
//   - applies migrations (golang-migrate) at startup, which also seeds
//     the demo server records.
//
// Note: the package keeps a global DB variable. Init must run exactly
// once at server startup.
package config

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/fbivlabs/fbiv-vpn/internal/shared/logger"
)

// DB is the global database handle.
//
// Initialized by Init and read by other packages through GetDB.
var DB *sql.DB

// Init opens the SQLite database described by cfg.DB, checks it is
// reachable and applies migrations from cfg.DB.MigrationsPath.
//
// migrate.ErrNoChange is not an error: it only means the schema is
// already current.
func Init(cfg *Config) error {
	customLog := logger.NewHTTPLoggerWith(cfg.Log.Level, cfg.Log.Format).Logger.Sugar()

	var err error
	DB, err = sql.Open("sqlite", cfg.DB.DSN+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		customLog.Errorf("error opening db: %v", err)
		return err
	}

	// SQLite allows one writer at a time; with the default of a single
	// connection, concurrent inserts serialize instead of surfacing
	// SQLITE_BUSY to handlers.
	maxConns := cfg.DB.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 1
	}
	DB.SetMaxOpenConns(maxConns)

	if cfg.DB.ConnMaxLifetime > 0 {
		DB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err = DB.Ping(); err != nil {
		customLog.Errorf("error checking db connection: %v", err)
		return err
	}

	driver, err := migratesqlite.WithInstance(DB, &migratesqlite.Config{})
	if err != nil {
		customLog.Errorf("error creating migration driver: %v", err)
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", cfg.DB.MigrationsPath),
		"sqlite", driver)
	if err != nil {
		customLog.Errorf("error creating migrations: %v", err)
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		customLog.Errorf("error applying migrations: %v", err)
		return err
	}

	customLog.Info("migrations applied successfully")
	return nil
}

// GetDB returns the current global *sql.DB.
//
// The value may be nil if Init has not run or failed.
func GetDB() *sql.DB {
	return DB
}
