// Package postgres provides a PostgreSQL-backed implementation of the storage.Store interface.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/mmynk/fintrack/internal/storage/sqlstore"
)

// Dialect describes PostgreSQL to the shared SQL store. Wallet rows are
// locked with SELECT ... FOR UPDATE, so postings against different wallets
// run concurrently while postings against the same wallet queue up.
var Dialect = sqlstore.Dialect{
	Name:           "postgres",
	NumberedParams: true,
	LockSuffix:     " FOR UPDATE",
	Schema:         migrations,
}

// New connects to the database described by dsn (a libpq connection string
// or postgres:// URL) and runs migrations.
func New(dsn string) (*sqlstore.Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

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
