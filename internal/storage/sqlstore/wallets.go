package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/models"
)

const walletColumns = "id, owner_user_id, name, balance, currency, created_at"

func scanWallet(row interface{ Scan(...any) error }) (*models.Wallet, error) {
	w := &models.Wallet{}
	err := row.Scan(&w.ID, &w.OwnerUserID, &w.Name, &w.Balance, &w.Currency, &w.CreatedAt)
	return w, err
}

// CreateWallet persists a new wallet to the database.
func (s *Store) CreateWallet(ctx context.Context, wallet *models.Wallet) error {
	if wallet.ID == "" {
		wallet.ID = uuid.New().String()
	}
	if wallet.CreatedAt == 0 {
		wallet.CreatedAt = time.Now().Unix()
	}

	_, err := s.exec(ctx,
		"INSERT INTO wallets ("+walletColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		wallet.ID, wallet.OwnerUserID, wallet.Name, wallet.Balance.String(), wallet.Currency, wallet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wallet: %w", err)
	}
	return nil
}

// GetWallet retrieves a wallet by ID.
func (q *queries) GetWallet(ctx context.Context, id string) (*models.Wallet, error) {
	return q.getWallet(ctx, id, "")
}

// LockWallet retrieves a wallet and locks its row for the rest of the transaction.
func (t *txStore) LockWallet(ctx context.Context, id string) (*models.Wallet, error) {
	return t.getWallet(ctx, id, t.dialect.LockSuffix)
}

func (q *queries) getWallet(ctx context.Context, id, suffix string) (*models.Wallet, error) {
	w, err := scanWallet(q.queryRow(ctx, "SELECT "+walletColumns+" FROM wallets WHERE id = ?"+suffix, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("wallet", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return w, nil
}

// UpdateWalletBalance overwrites a wallet's balance.
func (t *txStore) UpdateWalletBalance(ctx context.Context, walletID string, balance decimal.Decimal) error {
	res, err := t.exec(ctx, "UPDATE wallets SET balance = ? WHERE id = ?", balance.String(), walletID)
	if err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if n == 0 {
		return notFound("wallet", walletID)
	}
	return nil
}

// ListWalletsByOwner retrieves all wallets owned by a user.
func (s *Store) ListWalletsByOwner(ctx context.Context, userID string) ([]*models.Wallet, error) {
	rows, err := s.query(ctx,
		"SELECT "+walletColumns+" FROM wallets WHERE owner_user_id = ? ORDER BY created_at, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	defer rows.Close()

	var wallets []*models.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wallets: %w", err)
	}
	return wallets, nil
}
