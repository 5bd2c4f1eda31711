package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/fintrack/internal/models"
)

const transactionColumns = "id, amount, description, date, type, owner_user_id, wallet_id, category_id, group_id, created_at"

func scanTransaction(row interface{ Scan(...any) error }) (*models.Transaction, error) {
	t := &models.Transaction{}
	var date, typ string
	var groupID sql.NullString
	if err := row.Scan(&t.ID, &t.Amount, &t.Description, &date, &typ,
		&t.OwnerUserID, &t.WalletID, &t.CategoryID, &groupID, &t.CreatedAt); err != nil {
		return nil, err
	}
	d, err := models.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	t.Date = d
	t.Type = models.TransactionType(typ)
	t.GroupID = groupID.String
	return t, nil
}

// CreateTransaction persists a transaction inside the unit of work.
func (t *txStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt == 0 {
		tx.CreatedAt = time.Now().Unix()
	}

	_, err := t.exec(ctx,
		"INSERT INTO transactions ("+transactionColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		tx.ID, tx.Amount.String(), tx.Description, models.FormatDate(tx.Date), string(tx.Type),
		tx.OwnerUserID, tx.WalletID, tx.CategoryID, nullable(tx.GroupID), tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	t, err := scanTransaction(s.queryRow(ctx, "SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("transaction", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// ListTransactionsByOwner retrieves a user's transactions, newest first.
func (s *Store) ListTransactionsByOwner(ctx context.Context, userID string) ([]*models.Transaction, error) {
	return s.listTransactions(ctx, "owner_user_id = ?", userID)
}

// ListTransactionsByGroup retrieves a group's transactions, newest first.
func (s *Store) ListTransactionsByGroup(ctx context.Context, groupID string) ([]*models.Transaction, error) {
	return s.listTransactions(ctx, "group_id = ?", groupID)
}

func (s *Store) listTransactions(ctx context.Context, where string, arg any) ([]*models.Transaction, error) {
	rows, err := s.query(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE "+where+" ORDER BY date DESC, created_at DESC, id",
		arg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}

// DeleteTransaction removes a transaction and its debt records.
// The wallet balance change made when it was posted is not reversed.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		q := queries{db: tx, dialect: &s.dialect}

		if _, err := q.exec(ctx, "DELETE FROM debt_records WHERE transaction_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete debt records: %w", err)
		}

		res, err := q.exec(ctx, "DELETE FROM transactions WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deleted rows: %w", err)
		}
		if n == 0 {
			return notFound("transaction", id)
		}
		return nil
	})
}
