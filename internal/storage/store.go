// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/models"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// Reader holds the keyed lookups shared by the store and a unit of work.
type Reader interface {
	// GetUser retrieves a user by ID. Wraps ErrNotFound if absent.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users by their IDs.
	// Users that don't exist are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// GetWallet retrieves a wallet by ID. Wraps ErrNotFound if absent.
	GetWallet(ctx context.Context, id string) (*models.Wallet, error)

	// GetCategory retrieves a category by ID. Wraps ErrNotFound if absent.
	GetCategory(ctx context.Context, id string) (*models.Category, error)

	// GetGroup retrieves a group and its members. Wraps ErrNotFound if absent.
	GetGroup(ctx context.Context, id string) (*models.Group, error)
}

// LedgerTx is the unit of work used to post a transaction. All writes made
// through it commit together or not at all.
type LedgerTx interface {
	Reader

	// LockWallet loads a wallet and holds it against concurrent posts until
	// the unit of work ends. Wraps ErrNotFound if absent.
	LockWallet(ctx context.Context, id string) (*models.Wallet, error)

	// UpdateWalletBalance overwrites the stored balance of a wallet.
	UpdateWalletBalance(ctx context.Context, walletID string, balance decimal.Decimal) error

	// CreateTransaction persists a transaction. ID and CreatedAt are filled in if empty.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error

	// CreateDebtRecord persists one debt record. ID is filled in if empty.
	CreateDebtRecord(ctx context.Context, rec *models.DebtRecord) error
}

// Store defines the full persistence surface of the service.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the ledger or service layers.
type Store interface {
	Reader

	// WithTx runs fn inside a single database transaction. If fn returns an
	// error the transaction is rolled back; otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx LedgerTx) error) error

	// CreateUser inserts a new user. ID, CreatedAt and UpdatedAt are filled in if empty.
	CreateUser(ctx context.Context, user *models.User) error

	// UpsertUser inserts the user or refreshes email and display name of an existing one.
	UpsertUser(ctx context.Context, user *models.User) error

	// CreateWallet persists a new wallet with its initial balance.
	CreateWallet(ctx context.Context, wallet *models.Wallet) error

	// ListWalletsByOwner returns the wallets of one user, oldest first.
	ListWalletsByOwner(ctx context.Context, userID string) ([]*models.Wallet, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *models.Category) error

	// ListVisibleCategories returns global categories plus those owned by userID.
	ListVisibleCategories(ctx context.Context, userID string) ([]*models.Category, error)

	// CreateGroup persists a new group with its members.
	CreateGroup(ctx context.Context, group *models.Group) error

	// AddGroupMembers adds users to a group. Existing members are ignored.
	AddGroupMembers(ctx context.Context, groupID string, userIDs []string) error

	// ListGroupsByMember returns every group the user belongs to.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// GetTransaction retrieves a transaction by ID. Wraps ErrNotFound if absent.
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// ListTransactionsByOwner returns a user's transactions, newest date first.
	ListTransactionsByOwner(ctx context.Context, userID string) ([]*models.Transaction, error)

	// ListTransactionsByGroup returns a group's transactions, newest date first.
	ListTransactionsByGroup(ctx context.Context, groupID string) ([]*models.Transaction, error)

	// DeleteTransaction removes a transaction and its debt records.
	// The wallet balance is left untouched. Wraps ErrNotFound if absent.
	DeleteTransaction(ctx context.Context, id string) error

	// ListDebtRecordsByTransaction returns the debt records of one transaction in insertion order.
	ListDebtRecordsByTransaction(ctx context.Context, transactionID string) ([]*models.DebtRecord, error)

	// ListDebtsOwedTo returns records where userID paid and someone else owes.
	ListDebtsOwedTo(ctx context.Context, userID string) ([]*models.DebtEntry, error)

	// ListDebtsOwedBy returns records where someone else paid and userID owes.
	ListDebtsOwedBy(ctx context.Context, userID string) ([]*models.DebtEntry, error)

	// ListDebtsByGroup returns every debt record of the group's transactions.
	ListDebtsByGroup(ctx context.Context, groupID string) ([]*models.DebtEntry, error)

	// Close releases any resources held by the store.
	Close() error
}
