// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/fintrack/internal/storage/sqlstore"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Dialect describes SQLite to the shared SQL store. SQLite has no row locks,
// so every unit of work is serialized on a single connection.
var Dialect = sqlstore.Dialect{
	Name:        "sqlite",
	SerializeTx: true,
	Schema:      migrations,
}

// New creates a store backed by the SQLite database at dbPath.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*sqlstore.Store, error) {
	dsn := dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if dbPath != MemoryPath {
		// Create parent directory if it doesn't exist
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn += "&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: writers are serialized and an in-memory database is
	// shared by every caller.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store, err := sqlstore.New(db, Dialect)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}
