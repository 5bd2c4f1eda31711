package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/fintrack/internal/models"
)

// CreateDebtRecord persists one debt record inside the unit of work.
func (t *txStore) CreateDebtRecord(ctx context.Context, rec *models.DebtRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	_, err := t.exec(ctx,
		"INSERT INTO debt_records (id, transaction_id, debtor_user_id, share_amount, position) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.TransactionID, rec.DebtorUserID, rec.ShareAmount.String(), rec.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt record: %w", err)
	}
	return nil
}

// ListDebtRecordsByTransaction retrieves the debt records of a transaction in split order.
func (s *Store) ListDebtRecordsByTransaction(ctx context.Context, transactionID string) ([]*models.DebtRecord, error) {
	rows, err := s.query(ctx,
		"SELECT id, transaction_id, debtor_user_id, share_amount, position FROM debt_records WHERE transaction_id = ? ORDER BY position",
		transactionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list debt records: %w", err)
	}
	defer rows.Close()

	var records []*models.DebtRecord
	for rows.Next() {
		rec := &models.DebtRecord{}
		if err := rows.Scan(&rec.ID, &rec.TransactionID, &rec.DebtorUserID, &rec.ShareAmount, &rec.Position); err != nil {
			return nil, fmt.Errorf("failed to scan debt record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debt records: %w", err)
	}
	return records, nil
}

const debtEntrySelect = `
	SELECT d.id, d.transaction_id, d.debtor_user_id, d.share_amount, d.position,
	       t.owner_user_id, t.description, t.date, t.group_id, t.amount
	FROM debt_records d
	JOIN transactions t ON t.id = d.transaction_id
	WHERE `

const debtEntryOrder = " ORDER BY t.date DESC, t.created_at DESC, t.id, d.position"

// ListDebtsOwedTo retrieves records where the user paid and someone else owes a share.
func (s *Store) ListDebtsOwedTo(ctx context.Context, userID string) ([]*models.DebtEntry, error) {
	return s.listDebts(ctx, "t.owner_user_id = ? AND d.debtor_user_id <> ?", userID, userID)
}

// ListDebtsOwedBy retrieves records where someone else paid and the user owes a share.
func (s *Store) ListDebtsOwedBy(ctx context.Context, userID string) ([]*models.DebtEntry, error) {
	return s.listDebts(ctx, "t.owner_user_id <> ? AND d.debtor_user_id = ?", userID, userID)
}

// ListDebtsByGroup retrieves every debt record of a group's transactions.
func (s *Store) ListDebtsByGroup(ctx context.Context, groupID string) ([]*models.DebtEntry, error) {
	return s.listDebts(ctx, "t.group_id = ?", groupID)
}

func (s *Store) listDebts(ctx context.Context, where string, args ...any) ([]*models.DebtEntry, error) {
	rows, err := s.query(ctx, debtEntrySelect+where+debtEntryOrder, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var entries []*models.DebtEntry
	for rows.Next() {
		e := &models.DebtEntry{}
		var date string
		var groupID sql.NullString
		if err := rows.Scan(&e.ID, &e.TransactionID, &e.DebtorUserID, &e.ShareAmount, &e.Position,
			&e.CreditorUserID, &e.Description, &date, &groupID, &e.TransactionAmount); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		d, err := models.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("debt %s: %w", e.ID, err)
		}
		e.Date = d
		e.GroupID = groupID.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return entries, nil
}
