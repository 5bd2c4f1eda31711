package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/fintrack/internal/models"
)

// PostRequest is the input to Engine.Post.
type PostRequest struct {
	Amount      decimal.Decimal
	Description string

	// Date is the calendar date in YYYY-MM-DD form.
	Date string

	Type       models.TransactionType
	WalletID   string
	CategoryID string

	// GroupID is optional. SplitUserIDs is ignored without it.
	GroupID      string
	SplitUserIDs []string
}

// Validate checks the shape of the request without touching storage.
func (r *PostRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if !r.Type.Valid() {
		return &ValidationError{Field: "type", Message: "must be one of INCOME, EXPENSE, TRANSFER"}
	}
	if strings.TrimSpace(r.WalletID) == "" {
		return &ValidationError{Field: "walletId", Message: "is required"}
	}
	if strings.TrimSpace(r.CategoryID) == "" {
		return &ValidationError{Field: "categoryId", Message: "is required"}
	}
	if _, err := models.ParseDate(r.Date); err != nil {
		return &ValidationError{Field: "date", Message: err.Error()}
	}
	return nil
}

// ParseAmount parses a decimal money string from a request.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Message: "must be a decimal number"}
	}
	return d, nil
}

// ParseType parses a transaction type name from a request.
func ParseType(s string) (models.TransactionType, error) {
	t, err := models.ParseTransactionType(s)
	if err != nil {
		return "", &ValidationError{Field: "type", Message: "must be one of INCOME, EXPENSE, TRANSFER"}
	}
	return t, nil
}
