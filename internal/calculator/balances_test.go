package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(id, paidBy string, shares map[string]string) ExpenseForBalance {
	exp := ExpenseForBalance{ID: id, PaidBy: paidBy}
	for user, amount := range shares {
		exp.Shares = append(exp.Shares, ShareForBalance{UserID: user, AmountOwed: d(amount)})
	}
	return exp
}

func asMap(balances []Balance) map[string]string {
	out := make(map[string]string, len(balances))
	for _, b := range balances {
		out[b.CounterpartyID] = b.Amount.StringFixed(2)
	}
	return out
}

func TestNetBalances_ThreeWayDinner(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"alice": "20", "bob": "20", "charlie": "20"}),
	}

	assert.Equal(t, map[string]string{"bob": "20.00", "charlie": "20.00"}, asMap(NetBalances("alice", expenses)))
	assert.Equal(t, map[string]string{"alice": "-20.00"}, asMap(NetBalances("bob", expenses)))
	assert.Equal(t, map[string]string{"alice": "-20.00"}, asMap(NetBalances("charlie", expenses)))
}

func TestNetBalances_CustomSplit(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"alice": "30", "bob": "20"}),
	}

	assert.Equal(t, map[string]string{"bob": "20.00"}, asMap(NetBalances("alice", expenses)))
}

func TestNetBalances_AggregatesAcrossExpenses(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"alice": "20", "bob": "20", "charlie": "20"}),
		expense("e2", "bob", map[string]string{"alice": "5", "bob": "5"}),
		expense("e3", "charlie", map[string]string{"alice": "7.50", "charlie": "7.50"}),
	}

	assert.Equal(t, map[string]string{"bob": "15.00", "charlie": "12.50"}, asMap(NetBalances("alice", expenses)))
	assert.Equal(t, map[string]string{"alice": "-15.00"}, asMap(NetBalances("bob", expenses)))
}

func TestNetBalances_ZeroNetIsOmitted(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"alice": "10", "bob": "10"}),
		// Bob pays Alice back: payer bob, only alice owes.
		expense("e2", "bob", map[string]string{"alice": "10"}),
	}

	assert.Empty(t, NetBalances("alice", expenses))
	assert.Empty(t, NetBalances("bob", expenses))
}

func TestNetBalances_PayerWithoutOwnShare(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"bob": "12.34"}),
	}

	assert.Equal(t, map[string]string{"bob": "12.34"}, asMap(NetBalances("alice", expenses)))
	assert.Equal(t, map[string]string{"alice": "-12.34"}, asMap(NetBalances("bob", expenses)))
}

func TestNetBalances_EdgeCases(t *testing.T) {
	t.Run("no expenses", func(t *testing.T) {
		balances := NetBalances("alice", nil)
		require.NotNil(t, balances)
		assert.Empty(t, balances)
	})

	t.Run("self-paid single participant", func(t *testing.T) {
		expenses := []ExpenseForBalance{expense("e1", "alice", map[string]string{"alice": "42"})}
		assert.Empty(t, NetBalances("alice", expenses))
	})

	t.Run("unrelated expense", func(t *testing.T) {
		expenses := []ExpenseForBalance{expense("e1", "bob", map[string]string{"bob": "5", "charlie": "5"})}
		assert.Empty(t, NetBalances("alice", expenses))
	})

	t.Run("sorted by counterparty", func(t *testing.T) {
		expenses := []ExpenseForBalance{
			expense("e1", "alice", map[string]string{"zoe": "1", "bob": "1", "mia": "1"}),
		}
		balances := NetBalances("alice", expenses)
		require.Len(t, balances, 3)
		assert.Equal(t, []string{"bob", "mia", "zoe"}, []string{
			balances[0].CounterpartyID, balances[1].CounterpartyID, balances[2].CounterpartyID,
		})
	})
}

func TestNetBalances_Symmetry(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"alice": "33.34", "bob": "33.33"}),
		expense("e2", "bob", map[string]string{"alice": "0.07", "bob": "0.08"}),
		expense("e3", "bob", map[string]string{"alice": "19.99"}),
		expense("e4", "alice", map[string]string{"bob": "1.01", "alice": "1"}),
	}

	a := asMap(NetBalances("alice", expenses))
	b := asMap(NetBalances("bob", expenses))

	ab := d(a["bob"])
	ba := d(b["alice"])
	assert.True(t, ab.Equal(ba.Neg()), "alice->bob %s, bob->alice %s", ab, ba)
}

func TestNetBalances_Idempotent(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"alice": "20", "bob": "20", "charlie": "20"}),
		expense("e2", "charlie", map[string]string{"alice": "3", "charlie": "3"}),
	}

	assert.Equal(t, NetBalances("alice", expenses), NetBalances("alice", expenses))
}

func TestCalculateGroupBalances(t *testing.T) {
	expenses := []ExpenseForBalance{
		expense("e1", "alice", map[string]string{"alice": "20", "bob": "20", "charlie": "20"}),
		expense("e2", "bob", map[string]string{"alice": "15", "bob": "15"}),
	}

	members, debts := CalculateGroupBalances(expenses)

	require.Len(t, members, 3)
	byID := make(map[string]MemberBalance)
	total := decimal.Zero
	for _, m := range members {
		byID[m.UserID] = m
		total = total.Add(m.NetBalance)
	}
	assert.True(t, total.IsZero(), "nets should sum to zero, got %s", total)

	assert.Equal(t, "25.00", byID["alice"].NetBalance.StringFixed(2))
	assert.Equal(t, "60.00", byID["alice"].TotalPaid.StringFixed(2))
	assert.Equal(t, "35.00", byID["alice"].TotalOwed.StringFixed(2))
	assert.Equal(t, "-5.00", byID["bob"].NetBalance.StringFixed(2))
	assert.Equal(t, "-20.00", byID["charlie"].NetBalance.StringFixed(2))

	require.Len(t, debts, 2)
	assert.Equal(t, DebtEdge{From: "charlie", To: "alice", Amount: debts[0].Amount}, debts[0])
	assert.Equal(t, "20.00", debts[0].Amount.StringFixed(2))
	assert.Equal(t, "bob", debts[1].From)
	assert.Equal(t, "alice", debts[1].To)
	assert.Equal(t, "5.00", debts[1].Amount.StringFixed(2))
}

func TestSimplifyDebts_SettlesEveryone(t *testing.T) {
	members := []MemberBalance{
		{UserID: "a", NetBalance: d("50")},
		{UserID: "b", NetBalance: d("-30")},
		{UserID: "c", NetBalance: d("-20.01")},
		{UserID: "d", NetBalance: d("0.01")},
		{UserID: "e", NetBalance: decimal.Zero},
	}

	debts := SimplifyDebts(members)

	remaining := map[string]decimal.Decimal{}
	for _, m := range members {
		remaining[m.UserID] = m.NetBalance
	}
	for _, e := range debts {
		assert.True(t, e.Amount.IsPositive())
		remaining[e.From] = remaining[e.From].Add(e.Amount)
		remaining[e.To] = remaining[e.To].Sub(e.Amount)
	}
	for id, r := range remaining {
		assert.True(t, r.IsZero(), "%s left with %s", id, r)
	}
	assert.LessOrEqual(t, len(debts), len(members)-1)
}

func TestSimplifyDebts_AllSettled(t *testing.T) {
	assert.Empty(t, SimplifyDebts([]MemberBalance{{UserID: "a", NetBalance: decimal.Zero}}))
}
