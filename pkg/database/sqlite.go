package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteDB opens the embedded sqlite database at path and verifies the
// connection. A single connection avoids SQLITE_BUSY under the app's
// one-writer workload; busy_timeout covers the rest.
func NewSQLiteDB(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	log.Println("Successfully connected to sqlite database.")
	return db, nil
}

// CloseSQLiteDB closes the database handle.
func CloseSQLiteDB(db *sql.DB) {
	if db != nil {
		db.Close()
		log.Println("SQLite database closed.")
	}
}
