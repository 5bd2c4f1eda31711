package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNotFound is returned when a referenced wallet, category, group or user doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller may not act on a resource.
	ErrForbidden = errors.New("forbidden")

	// ErrInsufficientFunds is returned when an expense exceeds the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrValidation is returned when a request is malformed.
	ErrValidation = errors.New("invalid request")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NotFoundError names the entity that could not be resolved.
type NotFoundError struct {
	Entity string // e.g., "wallet", "category", "group", "splitUser"
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ForbiddenError explains why the caller was refused.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.Reason
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InsufficientFundsError provides details about a balance shortage.
type InsufficientFundsError struct {
	WalletID  string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in wallet %s: available %s, requested %s",
		e.WalletID, e.Available, e.Requested)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// ValidationError reports a malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsClientError reports whether err was caused by the request rather than the system.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInsufficientFunds)
}
