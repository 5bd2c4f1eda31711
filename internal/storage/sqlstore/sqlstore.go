// Package sqlstore implements storage.Store over database/sql.
//
// The same queries serve SQLite and PostgreSQL. Queries are written with "?"
// placeholders and rebound for dialects that use numbered parameters. The
// backend packages (storage/sqlite, storage/postgres) open the database, pick
// a Dialect and hand both to New.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mmynk/fintrack/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Ensure txStore implements storage.LedgerTx
var _ storage.LedgerTx = (*txStore)(nil)

// Dialect captures the SQL differences between backends.
type Dialect struct {
	// Name identifies the backend in logs and errors.
	Name string

	// NumberedParams rewrites "?" placeholders as $1, $2, ...
	NumberedParams bool

	// LockSuffix is appended to the wallet lookup inside a unit of work
	// (e.g. " FOR UPDATE"). Empty when the backend cannot lock rows.
	LockSuffix string

	// SerializeTx runs every unit of work under a store-wide mutex. Used by
	// backends without row locks, where it gives serializable isolation.
	SerializeTx bool

	// Schema holds the migration statements, executed one by one in order.
	Schema []string
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queries runs the store's statements against a querier.
type queries struct {
	db      querier
	dialect *Dialect
}

func (q *queries) rebind(query string) string {
	if !q.dialect.NumberedParams {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (q *queries) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return q.db.ExecContext(ctx, q.rebind(query), args...)
}

func (q *queries) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return q.db.QueryContext(ctx, q.rebind(query), args...)
}

func (q *queries) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, q.rebind(query), args...)
}

// Store implements storage.Store on top of a *sql.DB.
type Store struct {
	queries
	sqlDB   *sql.DB
	dialect Dialect
	mu      sync.Mutex
}

// New wraps an opened database, running the dialect's migrations.
// The store takes ownership of db and closes it on Close.
func New(db *sql.DB, dialect Dialect) (*Store, error) {
	s := &Store{sqlDB: db, dialect: dialect}
	s.queries = queries{db: db, dialect: &s.dialect}

	if err := s.Migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Migrate executes the schema statements. Statements are idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range s.dialect.Schema {
		if _, err := s.sqlDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s migration failed: %w", s.dialect.Name, err)
		}
	}
	return nil
}

// Dialect returns the backend dialect name.
func (s *Store) Dialect() string {
	return s.dialect.Name
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// WithTx executes fn within a database transaction.
func (s *Store) WithTx(ctx context.Context, fn func(tx storage.LedgerTx) error) error {
	if s.dialect.SerializeTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return fn(&txStore{queries: queries{db: tx, dialect: &s.dialect}})
	})
}

// inTx runs fn in a transaction without the unit-of-work wrapper.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// txStore is the storage.LedgerTx handed to WithTx callbacks.
type txStore struct {
	queries
}

// notFound wraps storage.ErrNotFound with the entity and key that missed.
func notFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, storage.ErrNotFound)
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
