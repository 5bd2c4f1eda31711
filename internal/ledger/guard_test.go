package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/fintrack/internal/models"
)

func TestRequireMember(t *testing.T) {
	group := &models.Group{ID: "g1", Members: []string{"alice", "bob"}}

	assert.NoError(t, RequireMember(group, "alice"))
	assert.ErrorIs(t, RequireMember(group, "mallory"), ErrForbidden)
	assert.ErrorIs(t, RequireMember(nil, "alice"), ErrForbidden)
}

func TestParseHelpers(t *testing.T) {
	amount, err := ParseAmount("amount", " 12.50 ")
	assert.NoError(t, err)
	assert.Equal(t, "12.5", amount.String())

	_, err = ParseAmount("amount", "twelve")
	assert.ErrorIs(t, err, ErrValidation)

	typ, err := ParseType("expense")
	assert.NoError(t, err)
	assert.Equal(t, models.TransactionExpense, typ)

	_, err = ParseType("refund")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "wallet not found: w1", (&NotFoundError{Entity: "wallet", ID: "w1"}).Error())
	assert.Equal(t, "invalid amount: must be greater than zero",
		(&ValidationError{Field: "amount", Message: "must be greater than zero"}).Error())
	assert.False(t, IsClientError(assert.AnError))
}
