package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       decimal.Decimal
		participants []string
		wantErr      bool
		wantShare    string
	}{
		{
			name:         "three-way split of 90",
			amount:       d("90"),
			participants: []string{"alice", "bob", "charlie"},
			wantShare:    "30",
		},
		{
			name:         "single participant owes everything",
			amount:       d("42.50"),
			participants: []string{"alice"},
			wantShare:    "42.5",
		},
		{
			name:         "duplicates count as separate shares",
			amount:       d("100"),
			participants: []string{"alice", "alice"},
			wantShare:    "50",
		},
		{
			name:         "remainder is not reconciled",
			amount:       d("100"),
			participants: []string{"alice", "bob", "charlie"},
			wantShare:    "33.3333333333333333",
		},
		{
			name:         "no participants should error",
			amount:       d("10"),
			participants: []string{},
			wantErr:      true,
		},
		{
			name:         "zero amount should error",
			amount:       decimal.Zero,
			participants: []string{"alice"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := EqualSplit(tt.amount, tt.participants)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EqualSplit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(shares) != len(tt.participants) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.participants))
			}
			for i, s := range shares {
				if !s.Equal(d(tt.wantShare)) {
					t.Errorf("share[%d] = %s, want %s", i, s, tt.wantShare)
				}
			}
		})
	}
}

func TestPayerResidual(t *testing.T) {
	shares, err := EqualSplit(d("100"), []string{"bob", "charlie", "diana"})
	if err != nil {
		t.Fatalf("EqualSplit failed: %v", err)
	}
	residual := PayerResidual(d("100"), shares)
	if !residual.Equal(d("0.0000000000000001")) {
		t.Errorf("residual = %s, want 0.0000000000000001", residual)
	}

	shares, _ = EqualSplit(d("90"), []string{"bob", "charlie"})
	if got := PayerResidual(d("90"), shares); !got.IsZero() {
		t.Errorf("residual = %s, want 0", got)
	}
}

func TestCalculateGroupBalances(t *testing.T) {
	t.Run("alice paid, bob and charlie owe", func(t *testing.T) {
		balances, edges := CalculateGroupBalances(
			[]string{"alice", "bob", "charlie"},
			[]DebtForBalance{
				{DebtorID: "bob", CreditorID: "alice", Amount: d("30")},
				{DebtorID: "charlie", CreditorID: "alice", Amount: d("30")},
				{DebtorID: "alice", CreditorID: "alice", Amount: d("30")},
			},
		)

		if len(balances) != 3 {
			t.Fatalf("got %d balances, want 3", len(balances))
		}
		byID := map[string]MemberBalance{}
		for _, b := range balances {
			byID[b.UserID] = b
		}
		if !byID["alice"].NetBalance.Equal(d("60")) {
			t.Errorf("alice net = %s, want 60", byID["alice"].NetBalance)
		}
		if !byID["bob"].NetBalance.Equal(d("-30")) {
			t.Errorf("bob net = %s, want -30", byID["bob"].NetBalance)
		}
		if len(edges) != 2 {
			t.Fatalf("got %d edges, want 2", len(edges))
		}
		for _, e := range edges {
			if e.To != "alice" || !e.Amount.Equal(d("30")) {
				t.Errorf("unexpected edge %+v", e)
			}
		}
	})

	t.Run("mutual debts net out", func(t *testing.T) {
		_, edges := CalculateGroupBalances(
			[]string{"alice", "bob"},
			[]DebtForBalance{
				{DebtorID: "bob", CreditorID: "alice", Amount: d("40")},
				{DebtorID: "alice", CreditorID: "bob", Amount: d("25")},
			},
		)
		if len(edges) != 1 {
			t.Fatalf("got %d edges, want 1", len(edges))
		}
		if edges[0].From != "bob" || edges[0].To != "alice" || !edges[0].Amount.Equal(d("15")) {
			t.Errorf("unexpected edge %+v", edges[0])
		}
	})

	t.Run("members without debts are listed with zero balance", func(t *testing.T) {
		balances, edges := CalculateGroupBalances([]string{"alice", "bob"}, nil)
		if len(balances) != 2 {
			t.Fatalf("got %d balances, want 2", len(balances))
		}
		if len(edges) != 0 {
			t.Errorf("got %d edges, want 0", len(edges))
		}
		for _, b := range balances {
			if !b.NetBalance.IsZero() {
				t.Errorf("%s net = %s, want 0", b.UserID, b.NetBalance)
			}
		}
	})

	t.Run("three-way remainder noise produces no edge", func(t *testing.T) {
		share := d("100").Div(d("3"))
		_, edges := CalculateGroupBalances(
			[]string{"alice", "bob"},
			[]DebtForBalance{
				{DebtorID: "bob", CreditorID: "alice", Amount: share},
				{DebtorID: "alice", CreditorID: "bob", Amount: share},
			},
		)
		if len(edges) != 0 {
			t.Errorf("got %d edges, want 0", len(edges))
		}
	})
}
