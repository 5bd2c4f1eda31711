package models

import "github.com/shopspring/decimal"

// Wallet is a named money balance owned by exactly one user.
//
// Balance is a materialized running total. After creation it is only changed
// by the ledger engine while posting a transaction.
type Wallet struct {
	// ID is the unique identifier for the wallet (UUID format).
	ID string

	// OwnerUserID is the user who owns the wallet.
	OwnerUserID string

	// Name is the display name (e.g., "Savings", "Daily Expenses").
	Name string

	// Balance is the current balance in Currency.
	Balance decimal.Decimal

	// Currency is the ISO currency code the wallet is denominated in (e.g., "USD").
	Currency string

	// CreatedAt is the Unix timestamp when the wallet was created.
	CreatedAt int64
}
