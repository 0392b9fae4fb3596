package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Init opens the goal store. The default driver is a file-backed
// sqlite database; DB_DRIVER=pgx switches to postgres with the same
// queries.
func Init(driver, connection string) (*sqlx.DB, error) {
	// The sqlite file lives under a data directory that may not exist
	// on first boot
	if driver == "sqlite" {
		dir := filepath.Dir(connection)
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// Modest pool: the workload is small goal/user rows plus the
	// scheduled reminder scans, and sqlite serializes writes anyway
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("goal store connected", "driver", driver)

	return db, nil
}
