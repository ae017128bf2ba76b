package calculator

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"
)

// ExpenseForBalance is an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	ID     string
	PaidBy string
	Shares []ShareForBalance
}

// ShareForBalance is one participant's owed amount on an expense.
type ShareForBalance struct {
	UserID     string
	AmountOwed decimal.Decimal
}

// Balance is a signed amount between the queried user and one counterparty.
// Positive means the counterparty owes the user, negative means the user owes
// the counterparty.
type Balance struct {
	CounterpartyID string
	Amount         decimal.Decimal
}

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	UserID     string
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalPaid  decimal.Decimal // What the member fronted for participants across all expenses
	TotalOwed  decimal.Decimal // Sum of the member's own shares
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount decimal.Decimal
}

// NetBalances reduces every expense userID took part in (as payer or as
// participant) into one signed balance per counterparty.
//
// Algorithm:
//   - userID paid: every other participant's share is owed to userID (+)
//   - someone else paid: userID's own share is owed to the payer (-)
//   - counterparties that net to exactly zero are dropped
//
// Expenses userID is not part of contribute nothing. The result is sorted by
// counterparty ID.
func NetBalances(userID string, expenses []ExpenseForBalance) []Balance {
	nets := make(map[string]decimal.Decimal)

	for _, exp := range expenses {
		if exp.PaidBy == userID {
			for _, share := range exp.Shares {
				if share.UserID == userID {
					continue
				}
				nets[share.UserID] = nets[share.UserID].Add(share.AmountOwed)
			}
			continue
		}

		for _, share := range exp.Shares {
			if share.UserID == userID {
				nets[exp.PaidBy] = nets[exp.PaidBy].Sub(share.AmountOwed)
			}
		}
	}

	balances := make([]Balance, 0, len(nets))
	for counterparty, amount := range nets {
		if amount.IsZero() {
			continue
		}
		balances = append(balances, Balance{CounterpartyID: counterparty, Amount: amount})
	}
	slices.SortFunc(balances, func(a, b Balance) int {
		return cmp.Compare(a.CounterpartyID, b.CounterpartyID)
	})
	return balances
}

// CalculateGroupBalances computes member positions across a group's expenses
// and a simplified list of who should pay whom.
//
// Algorithm:
//   - For each expense: the payer fronted every other participant's share, each participant owes their share
//   - Aggregate: net_balance = total_paid - total_owed
//   - Debt matrix: simplified using greedy matching of largest debtor against largest creditor
//
// The payer's own share counts on both sides, so it cancels out of the net.
func CalculateGroupBalances(expenses []ExpenseForBalance) ([]MemberBalance, []DebtEdge) {
	balances := make(map[string]*MemberBalance)
	member := func(id string) *MemberBalance {
		if _, exists := balances[id]; !exists {
			balances[id] = &MemberBalance{
				UserID:     id,
				NetBalance: decimal.Zero,
				TotalPaid:  decimal.Zero,
				TotalOwed:  decimal.Zero,
			}
		}
		return balances[id]
	}

	for _, exp := range expenses {
		payer := member(exp.PaidBy)
		for _, share := range exp.Shares {
			payer.TotalPaid = payer.TotalPaid.Add(share.AmountOwed)
			p := member(share.UserID)
			p.TotalOwed = p.TotalOwed.Add(share.AmountOwed)
		}
	}

	memberBalances := make([]MemberBalance, 0, len(balances))
	for _, bal := range balances {
		bal.NetBalance = bal.TotalPaid.Sub(bal.TotalOwed)
		memberBalances = append(memberBalances, *bal)
	}
	slices.SortFunc(memberBalances, func(a, b MemberBalance) int {
		return cmp.Compare(a.UserID, b.UserID)
	})

	return memberBalances, SimplifyDebts(memberBalances)
}

// SimplifyDebts turns net member positions into a short list of payments
// that settles everyone. Ties are broken by user ID so the output is stable.
func SimplifyDebts(members []MemberBalance) []DebtEdge {
	type position struct {
		id     string
		amount decimal.Decimal
	}

	var creditors, debtors []position
	for _, m := range members {
		switch {
		case m.NetBalance.IsPositive():
			creditors = append(creditors, position{id: m.UserID, amount: m.NetBalance})
		case m.NetBalance.IsNegative():
			debtors = append(debtors, position{id: m.UserID, amount: m.NetBalance.Neg()})
		}
	}

	byAmountDesc := func(a, b position) int {
		if c := b.amount.Cmp(a.amount); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	}
	slices.SortFunc(creditors, byAmountDesc)
	slices.SortFunc(debtors, byAmountDesc)

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtors[i].amount, creditors[j].amount)

		if amount.IsPositive() {
			edges = append(edges, DebtEdge{
				From:   debtors[i].id,
				To:     creditors[j].id,
				Amount: amount,
			})
		}

		debtors[i].amount = debtors[i].amount.Sub(amount)
		creditors[j].amount = creditors[j].amount.Sub(amount)

		if !debtors[i].amount.IsPositive() {
			i++
		}
		if !creditors[j].amount.IsPositive() {
			j++
		}
	}

	return edges
}
