// Package events publishes ledger notifications after a posting commits.
//
// Publication is best effort: the ledger has already committed by the time an
// event is sent, so failures are reported to the caller for logging only.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SubjectTransactionPosted is appended to the configured subject prefix.
const SubjectTransactionPosted = "transaction.posted"

// DebtorShare is one participant's share in a TransactionPosted event.
type DebtorShare struct {
	UserID      string          `json:"userId"`
	ShareAmount decimal.Decimal `json:"shareAmount"`
}

// TransactionPosted describes a committed posting.
type TransactionPosted struct {
	TransactionID string          `json:"transactionId"`
	OwnerUserID   string          `json:"ownerUserId"`
	WalletID      string          `json:"walletId"`
	GroupID       string          `json:"groupId,omitempty"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	Debtors       []DebtorShare   `json:"debtors"`
	PostedAt      time.Time       `json:"postedAt"`
}

// Publisher sends ledger events to interested consumers.
type Publisher interface {
	PublishTransactionPosted(ctx context.Context, event *TransactionPosted) error
	Close() error
}

// Noop discards every event. It is the default when no broker is configured.
type Noop struct{}

func (Noop) PublishTransactionPosted(context.Context, *TransactionPosted) error { return nil }
func (Noop) Close() error                                                       { return nil }
