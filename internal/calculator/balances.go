package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// settleEpsilon ignores sub-cent noise left by naive equal division.
var settleEpsilon = decimal.New(1, -2)

// DebtForBalance is the minimal view of a debt record needed to compute balances.
type DebtForBalance struct {
	DebtorID   string // Who owes
	CreditorID string // Who paid the parent transaction
	Amount     decimal.Decimal
}

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	UserID     string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalLent  decimal.Decimal // Sum of other members' shares on transactions this member paid
	TotalOwed  decimal.Decimal // Sum of this member's shares on transactions others paid
}

// DebtEdge represents a simplified debt from one member to another.
type DebtEdge struct {
	From   string // Member who owes
	To     string // Member who is owed
	Amount decimal.Decimal
}

// CalculateGroupBalances nets debt records across a group's transactions.
//
// A record where debtor == creditor is the payer's own share and does not move
// money. For every other record the creditor lends and the debtor owes the
// share. The returned debt edges are simplified with greedy matching of
// debtors against creditors, largest first.
func CalculateGroupBalances(members []string, debts []DebtForBalance) ([]MemberBalance, []DebtEdge) {
	balances := make(map[string]*MemberBalance, len(members))
	order := make([]string, 0, len(members))
	get := func(id string) *MemberBalance {
		if b, ok := balances[id]; ok {
			return b
		}
		b := &MemberBalance{UserID: id}
		balances[id] = b
		order = append(order, id)
		return b
	}
	for _, m := range members {
		get(m)
	}

	for _, d := range debts {
		if d.DebtorID == d.CreditorID {
			continue
		}
		get(d.CreditorID).TotalLent = get(d.CreditorID).TotalLent.Add(d.Amount)
		get(d.DebtorID).TotalOwed = get(d.DebtorID).TotalOwed.Add(d.Amount)
	}

	memberBalances := make([]MemberBalance, 0, len(order))
	var creditors, debtors []*MemberBalance
	for _, id := range order {
		b := balances[id]
		b.NetBalance = b.TotalLent.Sub(b.TotalOwed)
		memberBalances = append(memberBalances, *b)
		if b.NetBalance.GreaterThan(settleEpsilon) {
			creditors = append(creditors, b)
		} else if b.NetBalance.LessThan(settleEpsilon.Neg()) {
			debtors = append(debtors, b)
		}
	}

	// Largest first; ties broken by id so results are stable.
	sort.SliceStable(creditors, func(i, j int) bool {
		if c := creditors[i].NetBalance.Cmp(creditors[j].NetBalance); c != 0 {
			return c > 0
		}
		return creditors[i].UserID < creditors[j].UserID
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		if c := debtors[i].NetBalance.Cmp(debtors[j].NetBalance); c != 0 {
			return c < 0
		}
		return debtors[i].UserID < debtors[j].UserID
	})

	remaining := make(map[string]decimal.Decimal, len(creditors)+len(debtors))
	for _, c := range creditors {
		remaining[c.UserID] = c.NetBalance
	}
	for _, d := range debtors {
		remaining[d.UserID] = d.NetBalance.Neg()
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].UserID
		creditor := creditors[j].UserID

		amount := decimal.Min(remaining[debtor], remaining[creditor])
		if amount.GreaterThan(settleEpsilon) {
			edges = append(edges, DebtEdge{From: debtor, To: creditor, Amount: amount})
		}

		remaining[debtor] = remaining[debtor].Sub(amount)
		remaining[creditor] = remaining[creditor].Sub(amount)

		if remaining[debtor].LessThan(settleEpsilon) {
			i++
		}
		if remaining[creditor].LessThan(settleEpsilon) {
			j++
		}
	}

	return memberBalances, edges
}
