// Package ledger records shared expenses and derives balances from them.
//
// A Ledger is stateless apart from its store handle: every call validates,
// talks to the store and returns. Balances are never stored; each query
// recomputes them from expense shares.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/amirmtaati/paylash/internal/calculator"
	"github.com/amirmtaati/paylash/internal/models"
	"github.com/amirmtaati/paylash/internal/storage"
)

// DefaultTolerance is used when Options.Tolerance is nil.
var DefaultTolerance = decimal.New(1, -calculator.MinorUnits)

// DefaultCurrency is used when Options.Currency is empty.
const DefaultCurrency = "USD"

// SettlementDescription labels expenses recorded by RecordSettlement.
const SettlementDescription = "Settlement"

// Options configures a Ledger.
type Options struct {
	// Tolerance is how far custom shares may drift from the expense amount.
	// Nil selects DefaultTolerance; zero requires an exact match.
	Tolerance *decimal.Decimal
	// Currency is used for expenses recorded without one.
	Currency string
}

// Ledger implements expense recording and balance queries on top of a store.
type Ledger struct {
	store     storage.Store
	tolerance decimal.Decimal
	currency  string
}

// New creates a Ledger that reads and writes through store.
func New(store storage.Store, opts Options) *Ledger {
	l := &Ledger{
		store:     store,
		tolerance: DefaultTolerance,
		currency:  strings.ToUpper(strings.TrimSpace(opts.Currency)),
	}
	if opts.Tolerance != nil {
		l.tolerance = opts.Tolerance.Abs()
	}
	if l.currency == "" {
		l.currency = DefaultCurrency
	}
	return l
}

// CreateExpenseRequest describes one expense to record.
type CreateExpenseRequest struct {
	Description    string
	Amount         decimal.Decimal
	PayerID        string
	GroupID        string // optional
	ParticipantIDs []string
	SplitKind      models.SplitKind
	CustomShares   map[string]decimal.Decimal // required for SplitCustom
	Currency       string                     // optional, defaults to the ledger currency
}

// CreateExpenseWithSplit validates req, splits the amount among the
// participants and stores the expense with one share per participant.
//
// Nothing is written unless every check passes, and the expense and its
// shares are written in a single transaction.
func (l *Ledger) CreateExpenseWithSplit(ctx context.Context, req CreateExpenseRequest) (*models.Expense, error) {
	allocations, err := calculator.Allocate(calculator.SplitRequest{
		Amount:       req.Amount,
		Participants: req.ParticipantIDs,
		Kind:         req.SplitKind,
		CustomShares: req.CustomShares,
		Tolerance:    l.tolerance,
	})
	if err != nil {
		return nil, err
	}

	if err := l.requireUsers(ctx, append([]string{req.PayerID}, req.ParticipantIDs...)); err != nil {
		return nil, err
	}
	if req.GroupID != "" {
		if _, err := l.store.GetGroup(ctx, req.GroupID); err != nil {
			return nil, err
		}
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = models.DefaultDescription
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = l.currency
	}

	expense := &models.Expense{
		Description: description,
		Amount:      req.Amount.Round(calculator.MinorUnits),
		Currency:    currency,
		PaidBy:      req.PayerID,
		GroupID:     req.GroupID,
		Shares: lo.Map(allocations, func(a calculator.Allocation, _ int) models.ParticipantShare {
			return models.ParticipantShare{
				UserID:     a.UserID,
				Kind:       req.SplitKind,
				AmountOwed: a.Amount,
				Weight:     a.Weight,
			}
		}),
	}

	if err := l.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"payer_id", expense.PaidBy,
		"group_id", expense.GroupID,
		"amount", expense.Amount.StringFixed(calculator.MinorUnits),
		"currency", expense.Currency,
		"split", string(req.SplitKind),
		"participants", len(expense.Shares),
	)
	return expense, nil
}

// GetExpense returns an expense with all of its shares.
func (l *Ledger) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	return l.store.GetExpense(ctx, expenseID)
}

// ListExpenses returns a group's expenses, newest first.
func (l *Ledger) ListExpenses(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if _, err := l.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return l.store.ListExpensesByGroup(ctx, groupID)
}

// ListUserExpenses returns every expense userID paid or owes a share of.
func (l *Ledger) ListUserExpenses(ctx context.Context, userID string) ([]*models.Expense, error) {
	if _, err := l.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return l.store.ListExpensesForUser(ctx, userID, "")
}

// DeleteExpense removes an expense together with its shares.
func (l *Ledger) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := l.store.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}
	slog.Info("Expense deleted", "expense_id", expenseID)
	return nil
}

// RecordSettlement records a repayment of amount from fromID to toID.
//
// It is stored as an ordinary custom expense paid by fromID in which toID
// owes the whole amount, so it offsets earlier debts of fromID to toID.
func (l *Ledger) RecordSettlement(ctx context.Context, fromID, toID string, amount decimal.Decimal, groupID string) (*models.Expense, error) {
	if fromID == toID {
		return nil, fmt.Errorf("%w: %s pays %s", models.ErrInvalidSettlement, fromID, toID)
	}
	return l.CreateExpenseWithSplit(ctx, CreateExpenseRequest{
		Description:    SettlementDescription,
		Amount:         amount,
		PayerID:        fromID,
		GroupID:        groupID,
		ParticipantIDs: []string{toID},
		SplitKind:      models.SplitCustom,
		CustomShares:   map[string]decimal.Decimal{toID: amount},
	})
}

// requireUsers returns models.ErrUserNotFound naming every unknown id.
func (l *Ledger) requireUsers(ctx context.Context, userIDs []string) error {
	ids := lo.Uniq(userIDs)
	users, err := l.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		return err
	}
	missing := lo.Filter(ids, func(id string, _ int) bool {
		_, ok := users[id]
		return !ok
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", models.ErrUserNotFound, strings.Join(missing, ", "))
	}
	return nil
}
