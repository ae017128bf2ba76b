package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirmtaati/paylash/internal/calculator"
	"github.com/amirmtaati/paylash/internal/models"
	"github.com/amirmtaati/paylash/internal/storage/sqlite"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// setupLedger returns a ledger on a fresh database with alice, bob and
// charlie registered.
func setupLedger(t *testing.T) (*Ledger, *sqlite.SQLiteStore) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err, "failed to create store")
	t.Cleanup(func() { store.Close() })

	l := New(store, Options{Currency: "eur"})
	for _, u := range []*models.User{
		{ID: "alice", FirstName: "Alice"},
		{ID: "bob", Username: "bobby"},
		{ID: "charlie"},
	} {
		require.NoError(t, l.RegisterUser(context.Background(), u))
	}
	return l, store
}

func equalExpense(payer string, amount string, participants ...string) CreateExpenseRequest {
	return CreateExpenseRequest{
		Description:    "Dinner",
		Amount:         dec(amount),
		PayerID:        payer,
		ParticipantIDs: participants,
		SplitKind:      models.SplitEqual,
	}
}

// balanceMap flattens balances for easier assertions.
func balanceMap(balances []calculator.Balance) map[string]string {
	m := make(map[string]string, len(balances))
	for _, b := range balances {
		m[b.CounterpartyID] = b.Amount.StringFixed(2)
	}
	return m
}

func countRows(t *testing.T, l *Ledger, userID string) int {
	t.Helper()
	expenses, err := l.ListUserExpenses(context.Background(), userID)
	require.NoError(t, err)
	return len(expenses)
}

func TestNewDefaults(t *testing.T) {
	l := New(nil, Options{})
	assert.True(t, l.tolerance.Equal(dec("0.01")))
	assert.Equal(t, "USD", l.currency)

	negative := dec("-0.05")
	l = New(nil, Options{Tolerance: &negative, Currency: " gbp "})
	assert.True(t, l.tolerance.Equal(dec("0.05")))
	assert.Equal(t, "GBP", l.currency)

	exact := decimal.Zero
	l = New(nil, Options{Tolerance: &exact})
	assert.True(t, l.tolerance.IsZero())
}

func TestEqualSplitScenario(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	expense, err := l.CreateExpenseWithSplit(ctx, equalExpense("alice", "60", "alice", "bob", "charlie"))
	require.NoError(t, err)
	require.NotEmpty(t, expense.ID)
	assert.Equal(t, "EUR", expense.Currency)

	stored, err := l.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	require.Len(t, stored.Shares, 3)
	for _, s := range stored.Shares {
		assert.Equal(t, "20.00", s.AmountOwed.StringFixed(2))
		assert.Equal(t, models.SplitEqual, s.Kind)
	}

	alice, err := l.GetNetBalances(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"bob": "20.00", "charlie": "20.00"}, balanceMap(alice))

	bob, err := l.GetNetBalances(ctx, "bob", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "-20.00"}, balanceMap(bob))
}

func TestCustomSplitScenario(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	_, err := l.CreateExpenseWithSplit(ctx, CreateExpenseRequest{
		Description:    "Groceries",
		Amount:         dec("50"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob"},
		SplitKind:      models.SplitCustom,
		CustomShares:   map[string]decimal.Decimal{"alice": dec("30"), "bob": dec("20")},
	})
	require.NoError(t, err)

	alice, err := l.GetNetBalances(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"bob": "20.00"}, balanceMap(alice))
}

func TestCreateExpenseWithSplitRejects(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		modify  func(*CreateExpenseRequest)
		wantErr error
	}{
		{"no participants", func(r *CreateExpenseRequest) { r.ParticipantIDs = nil }, models.ErrNoParticipants},
		{"zero amount", func(r *CreateExpenseRequest) { r.Amount = decimal.Zero }, models.ErrInvalidAmount},
		{"sub-cent amount", func(r *CreateExpenseRequest) { r.Amount = dec("1.505") }, models.ErrInvalidAmount},
		{"duplicate participant", func(r *CreateExpenseRequest) { r.ParticipantIDs = []string{"bob", "bob"} }, models.ErrDuplicateParticipant},
		{"unknown split kind", func(r *CreateExpenseRequest) { r.SplitKind = "percent" }, models.ErrUnsupportedSplitKind},
		{"unknown payer", func(r *CreateExpenseRequest) { r.PayerID = "mallory" }, models.ErrUserNotFound},
		{"unknown participant", func(r *CreateExpenseRequest) { r.ParticipantIDs = []string{"bob", "mallory"} }, models.ErrUserNotFound},
		{"unknown group", func(r *CreateExpenseRequest) { r.GroupID = "no-such-group" }, models.ErrGroupNotFound},
		{"custom share missing", func(r *CreateExpenseRequest) {
			r.SplitKind = models.SplitCustom
			r.CustomShares = map[string]decimal.Decimal{"alice": dec("60")}
		}, models.ErrMissingCustomShare},
		{"custom shares off by more than tolerance", func(r *CreateExpenseRequest) {
			r.SplitKind = models.SplitCustom
			r.CustomShares = map[string]decimal.Decimal{"alice": dec("30"), "bob": dec("29.98")}
		}, models.ErrShareMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := equalExpense("alice", "60", "alice", "bob")
			tt.modify(&req)

			_, err := l.CreateExpenseWithSplit(ctx, req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, countRows(t, l, "alice"), "no rows may be written")
		})
	}
}

func TestCreateExpenseWithinTolerance(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	expense, err := l.CreateExpenseWithSplit(ctx, CreateExpenseRequest{
		Amount:         dec("10"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob", "charlie"},
		SplitKind:      models.SplitCustom,
		CustomShares:   map[string]decimal.Decimal{"alice": dec("3.33"), "bob": dec("3.33"), "charlie": dec("3.33")},
		Currency:       "usd",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDescription, expense.Description)
	assert.Equal(t, "USD", expense.Currency)

	stored, err := l.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Shares[1].Weight)
	assert.True(t, stored.Shares[1].Weight.Equal(dec("3.33")))
	assert.True(t, stored.ShareTotal().Equal(dec("9.99")))
}

func TestCreateExpenseZeroTolerance(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()

	exact := decimal.Zero
	l = New(store, Options{Tolerance: &exact})

	req := CreateExpenseRequest{
		Amount:         dec("50"),
		PayerID:        "alice",
		ParticipantIDs: []string{"alice", "bob"},
		SplitKind:      models.SplitCustom,
		CustomShares:   map[string]decimal.Decimal{"alice": dec("30"), "bob": dec("19.99")},
	}
	_, err := l.CreateExpenseWithSplit(ctx, req)
	require.ErrorIs(t, err, models.ErrShareMismatch)
	assert.Zero(t, countRows(t, l, "alice"), "no rows may be written")

	req.CustomShares["bob"] = dec("20")
	_, err = l.CreateExpenseWithSplit(ctx, req)
	require.NoError(t, err)
}

func TestEqualSplitRemainder(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	expense, err := l.CreateExpenseWithSplit(ctx, equalExpense("alice", "100", "charlie", "bob", "alice"))
	require.NoError(t, err)

	stored, err := l.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	got := make([]string, len(stored.Shares))
	for i, s := range stored.Shares {
		got[i] = s.UserID + "=" + s.AmountOwed.StringFixed(2)
	}
	assert.Equal(t, []string{"charlie=33.34", "bob=33.33", "alice=33.33"}, got)
	assert.True(t, stored.ShareTotal().Equal(dec("100")))
}

func TestGetNetBalances(t *testing.T) {
	t.Run("registered user without expenses", func(t *testing.T) {
		l, _ := setupLedger(t)
		balances, err := l.GetNetBalances(context.Background(), "charlie", "")
		require.NoError(t, err)
		assert.NotNil(t, balances)
		assert.Empty(t, balances)
	})

	t.Run("unregistered user", func(t *testing.T) {
		l, _ := setupLedger(t)
		_, err := l.GetNetBalances(context.Background(), "mallory", "")
		require.ErrorIs(t, err, models.ErrUserNotFound)
	})

	t.Run("self-paid single participant contributes nothing", func(t *testing.T) {
		l, _ := setupLedger(t)
		_, err := l.CreateExpenseWithSplit(context.Background(), equalExpense("alice", "12", "alice"))
		require.NoError(t, err)

		balances, err := l.GetNetBalances(context.Background(), "alice", "")
		require.NoError(t, err)
		assert.Empty(t, balances)
	})

	t.Run("opposite debts cancel and are omitted", func(t *testing.T) {
		l, _ := setupLedger(t)
		ctx := context.Background()
		_, err := l.CreateExpenseWithSplit(ctx, equalExpense("alice", "20", "alice", "bob"))
		require.NoError(t, err)
		_, err = l.CreateExpenseWithSplit(ctx, equalExpense("bob", "20", "alice", "bob"))
		require.NoError(t, err)

		balances, err := l.GetNetBalances(ctx, "alice", "")
		require.NoError(t, err)
		assert.Empty(t, balances)
	})

	t.Run("symmetry and idempotence", func(t *testing.T) {
		l, _ := setupLedger(t)
		ctx := context.Background()
		_, err := l.CreateExpenseWithSplit(ctx, equalExpense("alice", "100", "alice", "bob", "charlie"))
		require.NoError(t, err)
		_, err = l.CreateExpenseWithSplit(ctx, equalExpense("bob", "45.50", "bob", "charlie"))
		require.NoError(t, err)
		_, err = l.CreateExpenseWithSplit(ctx, CreateExpenseRequest{
			Amount:         dec("30"),
			PayerID:        "charlie",
			ParticipantIDs: []string{"alice"},
			SplitKind:      models.SplitCustom,
			CustomShares:   map[string]decimal.Decimal{"alice": dec("30")},
		})
		require.NoError(t, err)

		users := []string{"alice", "bob", "charlie"}
		nets := make(map[string]map[string]decimal.Decimal)
		for _, u := range users {
			balances, err := l.GetNetBalances(ctx, u, "")
			require.NoError(t, err)
			again, err := l.GetNetBalances(ctx, u, "")
			require.NoError(t, err)
			assert.Equal(t, balanceMap(balances), balanceMap(again))

			nets[u] = make(map[string]decimal.Decimal)
			for _, b := range balances {
				nets[u][b.CounterpartyID] = b.Amount
			}
		}

		for _, a := range users {
			for _, b := range users {
				assert.True(t, nets[a][b].Equal(nets[b][a].Neg()), "%s/%s", a, b)
			}
		}
		assert.Equal(t, "-3.33", nets["charlie"]["alice"].StringFixed(2))
	})

	t.Run("group filter", func(t *testing.T) {
		l, _ := setupLedger(t)
		ctx := context.Background()
		group, err := l.CreateGroup(ctx, "Trip", "alice")
		require.NoError(t, err)
		_, err = l.AddMember(ctx, group.ID, "bob")
		require.NoError(t, err)

		inGroup := equalExpense("alice", "10", "alice", "bob")
		inGroup.GroupID = group.ID
		_, err = l.CreateExpenseWithSplit(ctx, inGroup)
		require.NoError(t, err)
		_, err = l.CreateExpenseWithSplit(ctx, equalExpense("alice", "40", "alice", "bob"))
		require.NoError(t, err)

		scoped, err := l.GetNetBalances(ctx, "bob", group.ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"alice": "-5.00"}, balanceMap(scoped))

		all, err := l.GetNetBalances(ctx, "bob", "")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"alice": "-25.00"}, balanceMap(all))

		_, err = l.GetNetBalances(ctx, "bob", "missing")
		require.ErrorIs(t, err, models.ErrGroupNotFound)
	})
}

func TestGetNetBalancesWithNames(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()

	// dave exists only as a bare id with no profile fields.
	require.NoError(t, store.UpsertUser(ctx, &models.User{ID: "dave"}))

	_, err := l.CreateExpenseWithSplit(ctx, equalExpense("alice", "80", "alice", "bob", "charlie", "dave"))
	require.NoError(t, err)
	_, err = l.CreateExpenseWithSplit(ctx, equalExpense("bob", "10", "alice", "bob"))
	require.NoError(t, err)

	balances, err := l.GetNetBalancesWithNames(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, balances, 3)

	assert.Equal(t, "bob", balances[0].CounterpartyID)
	assert.Equal(t, "bobby", balances[0].Name)
	assert.Equal(t, "15.00", balances[0].Amount.StringFixed(2))
	assert.Equal(t, "User charlie", balances[1].Name)
	assert.Equal(t, "User dave", balances[2].Name)

	names, err := l.DisplayNames(ctx, []string{"alice", "ghost"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "Alice", "ghost": "User ghost"}, names)
}

func TestRecordSettlement(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	_, err := l.CreateExpenseWithSplit(ctx, equalExpense("alice", "60", "alice", "bob", "charlie"))
	require.NoError(t, err)

	settlement, err := l.RecordSettlement(ctx, "bob", "alice", dec("20"), "")
	require.NoError(t, err)
	assert.Equal(t, SettlementDescription, settlement.Description)
	require.Len(t, settlement.Shares, 1)
	assert.Equal(t, models.SplitCustom, settlement.Shares[0].Kind)

	alice, err := l.GetNetBalances(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"charlie": "20.00"}, balanceMap(alice))

	bob, err := l.GetNetBalances(ctx, "bob", "")
	require.NoError(t, err)
	assert.Empty(t, bob)

	_, err = l.RecordSettlement(ctx, "bob", "bob", dec("5"), "")
	require.ErrorIs(t, err, models.ErrInvalidSettlement)

	_, err = l.RecordSettlement(ctx, "bob", "alice", dec("-5"), "")
	require.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestDeleteExpense(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	expense, err := l.CreateExpenseWithSplit(ctx, equalExpense("alice", "60", "alice", "bob"))
	require.NoError(t, err)
	require.NoError(t, l.DeleteExpense(ctx, expense.ID))

	balances, err := l.GetNetBalances(ctx, "alice", "")
	require.NoError(t, err)
	assert.Empty(t, balances)

	require.ErrorIs(t, l.DeleteExpense(ctx, expense.ID), models.ErrExpenseNotFound)
	_, err = l.GetExpense(ctx, expense.ID)
	require.ErrorIs(t, err, models.ErrExpenseNotFound)
}

func TestGetGroupBalances(t *testing.T) {
	l, _ := setupLedger(t)
	ctx := context.Background()

	group, err := l.CreateGroup(ctx, "Flat", "alice")
	require.NoError(t, err)
	for _, id := range []string{"bob", "charlie"} {
		_, err := l.AddMember(ctx, group.ID, id)
		require.NoError(t, err)
	}

	rent := equalExpense("alice", "90", "alice", "bob")
	rent.GroupID = group.ID
	_, err = l.CreateExpenseWithSplit(ctx, rent)
	require.NoError(t, err)

	view, err := l.GetGroupBalances(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, view.Members, 3, "members without expenses are listed")

	assert.Equal(t, "alice", view.Members[0].UserID)
	assert.Equal(t, "90.00", view.Members[0].TotalPaid.StringFixed(2))
	assert.Equal(t, "45.00", view.Members[0].NetBalance.StringFixed(2))
	assert.Equal(t, "-45.00", view.Members[1].NetBalance.StringFixed(2))
	assert.True(t, view.Members[2].NetBalance.IsZero())

	require.Len(t, view.Debts, 1)
	assert.Equal(t, calculator.DebtEdge{From: "bob", To: "alice", Amount: view.Debts[0].Amount}, view.Debts[0])
	assert.Equal(t, "45.00", view.Debts[0].Amount.StringFixed(2))

	_, err = l.GetGroupBalances(ctx, "missing")
	require.ErrorIs(t, err, models.ErrGroupNotFound)

	expenses, err := l.ListExpenses(ctx, group.ID)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}
