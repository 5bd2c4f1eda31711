package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for transaction dates.
const DateLayout = "2006-01-02"

// TransactionType classifies a money movement.
type TransactionType string

const (
	TransactionIncome   TransactionType = "INCOME"
	TransactionExpense  TransactionType = "EXPENSE"
	TransactionTransfer TransactionType = "TRANSFER"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIncome, TransactionExpense, TransactionTransfer:
		return true
	}
	return false
}

// ParseTransactionType parses a case-insensitive transaction type name.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

// Transaction is a single recorded money movement affecting one wallet.
// It is created exactly once and never mutated.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// Amount is the gross face value, always positive.
	Amount decimal.Decimal

	Description string

	// Date is the calendar date of the movement (time component is zero, UTC).
	Date time.Time

	Type TransactionType

	// OwnerUserID is the user who posted the transaction (the payer of a split).
	OwnerUserID string

	WalletID   string
	CategoryID string

	// GroupID is empty for personal transactions.
	GroupID string

	// CreatedAt is the Unix timestamp when the transaction was posted.
	CreatedAt int64
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return d, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
