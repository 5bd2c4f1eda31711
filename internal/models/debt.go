package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtRecord is one participant's share of a group transaction: money the
// debtor owes to the transaction's owner. Records are only created while
// posting a transaction and are never updated.
type DebtRecord struct {
	ID            string
	TransactionID string
	DebtorUserID  string
	ShareAmount   decimal.Decimal

	// Position is the index of the debtor in the split list of the parent transaction.
	Position int
}

// DebtEntry is a DebtRecord joined with the fields of its parent transaction
// that debt listings need.
type DebtEntry struct {
	DebtRecord

	// CreditorUserID is the owner of the parent transaction (the payer).
	CreditorUserID string

	Description string
	Date        time.Time
	GroupID     string

	// TransactionAmount is the gross amount of the parent transaction.
	TransactionAmount decimal.Decimal
}
