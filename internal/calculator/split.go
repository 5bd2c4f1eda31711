package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoParticipants is returned when a split has nobody to divide among.
var ErrNoParticipants = errors.New("must have at least one participant")

// ErrNonPositiveAmount is returned when a split amount is zero or negative.
var ErrNonPositiveAmount = errors.New("amount must be positive")

// EqualSplit divides amount equally among participants and returns one share
// per participant, in input order. Duplicate participants get duplicate shares.
//
// Division is naive: the remainder is not reconciled, so 100 split 3 ways
// yields three shares of 33.3333333333333333 (decimal.DivisionPrecision digits).
func EqualSplit(amount decimal.Decimal, participants []string) ([]decimal.Decimal, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	share := amount.Div(decimal.NewFromInt(int64(len(participants))))
	shares := make([]decimal.Decimal, len(participants))
	for i := range participants {
		shares[i] = share
	}
	return shares, nil
}

// PayerResidual is the part of amount the payer bears themselves after the
// given shares are owed by others. It is derived on demand and never stored.
func PayerResidual(amount decimal.Decimal, shares []decimal.Decimal) decimal.Decimal {
	residual := amount
	for _, s := range shares {
		residual = residual.Sub(s)
	}
	return residual
}
