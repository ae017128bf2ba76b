package ledger

import (
	"cmp"
	"context"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/amirmtaati/paylash/internal/calculator"
	"github.com/amirmtaati/paylash/internal/models"
)

// NamedBalance is a calculator.Balance with the counterparty's display name.
type NamedBalance struct {
	CounterpartyID string
	Name           string
	Amount         decimal.Decimal
}

// GroupBalances is the per-member view of one group.
type GroupBalances struct {
	GroupID string
	Members []calculator.MemberBalance
	Debts   []calculator.DebtEdge
}

// GetNetBalances returns what each counterparty owes userID (positive) or
// what userID owes them (negative), across all expenses or only those of
// groupID when it is non-empty. Counterparties that net to zero are omitted.
//
// A registered user with no expenses gets an empty slice.
func (l *Ledger) GetNetBalances(ctx context.Context, userID, groupID string) ([]calculator.Balance, error) {
	if _, err := l.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	if groupID != "" {
		if _, err := l.store.GetGroup(ctx, groupID); err != nil {
			return nil, err
		}
	}

	// One query returns the expenses together with every co-participant share.
	expenses, err := l.store.ListExpensesForUser(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	return calculator.NetBalances(userID, toBalanceInput(expenses)), nil
}

// GetNetBalancesWithNames is GetNetBalances with each counterparty resolved to
// its first name, username or a "User <id>" placeholder.
func (l *Ledger) GetNetBalancesWithNames(ctx context.Context, userID, groupID string) ([]NamedBalance, error) {
	balances, err := l.GetNetBalances(ctx, userID, groupID)
	if err != nil {
		return nil, err
	}

	names, err := l.DisplayNames(ctx, lo.Map(balances, func(b calculator.Balance, _ int) string {
		return b.CounterpartyID
	}))
	if err != nil {
		return nil, err
	}

	return lo.Map(balances, func(b calculator.Balance, _ int) NamedBalance {
		return NamedBalance{CounterpartyID: b.CounterpartyID, Name: names[b.CounterpartyID], Amount: b.Amount}
	}), nil
}

// GetGroupBalances returns every member's position in the group and the
// simplified list of payments that would settle it.
//
// Members without any expense are listed with zero totals.
func (l *Ledger) GetGroupBalances(ctx context.Context, groupID string) (*GroupBalances, error) {
	group, err := l.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expenses, err := l.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members, debts := calculator.CalculateGroupBalances(toBalanceInput(expenses))

	seen := lo.SliceToMap(members, func(m calculator.MemberBalance) (string, bool) { return m.UserID, true })
	for _, id := range group.Members {
		if !seen[id] {
			members = append(members, calculator.MemberBalance{
				UserID:     id,
				NetBalance: decimal.Zero,
				TotalPaid:  decimal.Zero,
				TotalOwed:  decimal.Zero,
			})
		}
	}
	slices.SortFunc(members, func(a, b calculator.MemberBalance) int {
		return cmp.Compare(a.UserID, b.UserID)
	})

	return &GroupBalances{GroupID: groupID, Members: members, Debts: debts}, nil
}

func toBalanceInput(expenses []*models.Expense) []calculator.ExpenseForBalance {
	return lo.Map(expenses, func(e *models.Expense, _ int) calculator.ExpenseForBalance {
		return calculator.ExpenseForBalance{
			ID:     e.ID,
			PaidBy: e.PaidBy,
			Shares: lo.Map(e.Shares, func(s models.ParticipantShare, _ int) calculator.ShareForBalance {
				return calculator.ShareForBalance{UserID: s.UserID, AmountOwed: s.AmountOwed}
			}),
		}
	})
}
