package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirmtaati/paylash/internal/models"
)

const amountPlaces = 2

// CreateExpense persists a new expense and all of its participant shares
// in a single transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if len(expense.Shares) == 0 {
		return models.ErrNoParticipants
	}

	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	// Generate IDs if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, description, amount, currency, paid_by, group_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Description, expense.Amount.StringFixed(amountPlaces), expense.Currency,
		expense.PaidBy, nullable(expense.GroupID), expense.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			err = errors.Join(missingReference(ctx, tx, expense), err)
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i := range expense.Shares {
		share := &expense.Shares[i]
		if share.ID == "" {
			share.ID = uuid.New().String()
		}
		share.ExpenseID = expense.ID

		var weight any
		if share.Weight != nil {
			weight = share.Weight.StringFixed(amountPlaces)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO expense_participants (id, expense_id, user_id, seq, share_type, amount_owed, share_value)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			share.ID, expense.ID, share.UserID, i, string(share.Kind),
			share.AmountOwed.StringFixed(amountPlaces), weight,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				err = errors.Join(models.ErrUserNotFound, err)
			}
			return fmt.Errorf("failed to insert participant share: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including all participant shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expenses, err := s.listExpenses(ctx, "e.id = ?", expenseID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrExpenseNotFound, expenseID)
	}
	return expenses[0], nil
}

// ListExpensesByGroup retrieves all expenses of a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	return s.listExpenses(ctx, "e.group_id = ?", groupID)
}

// ListExpensesForUser retrieves every expense userID paid or owes a share of.
func (s *SQLiteStore) ListExpensesForUser(ctx context.Context, userID, groupID string) ([]*models.Expense, error) {
	where := `(e.paid_by = ? OR EXISTS (
		SELECT 1 FROM expense_participants p WHERE p.expense_id = e.id AND p.user_id = ?))`
	args := []any{userID, userID}
	if groupID != "" {
		where += " AND e.group_id = ?"
		args = append(args, groupID)
	}
	return s.listExpenses(ctx, where, args...)
}

// DeleteExpense removes an expense; its shares go with it via ON DELETE CASCADE.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", models.ErrExpenseNotFound, expenseID)
	}
	return nil
}

// listExpenses loads the expenses matching where, then all of their shares
// with a second query over the same filter.
func (s *SQLiteStore) listExpenses(ctx context.Context, where string, args ...any) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.description, e.amount, e.currency, e.paid_by, COALESCE(e.group_id, ''), e.created_at
		 FROM expenses e WHERE `+where+`
		 ORDER BY e.created_at DESC, e.rowid DESC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		exp := &models.Expense{}
		if err := rows.Scan(&exp.ID, &exp.Description, &exp.Amount, &exp.Currency,
			&exp.PaidBy, &exp.GroupID, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
		byID[exp.ID] = exp
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	if len(expenses) == 0 {
		return expenses, nil
	}

	shareRows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.expense_id, p.user_id, p.share_type, p.amount_owed, p.share_value
		 FROM expense_participants p
		 WHERE p.expense_id IN (SELECT e.id FROM expenses e WHERE `+where+`)
		 ORDER BY p.expense_id, p.seq`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participant shares: %w", err)
	}
	defer shareRows.Close()

	for shareRows.Next() {
		var share models.ParticipantShare
		var kind string
		var weight decimal.NullDecimal
		if err := shareRows.Scan(&share.ID, &share.ExpenseID, &share.UserID, &kind,
			&share.AmountOwed, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan participant share: %w", err)
		}
		share.Kind = models.SplitKind(kind)
		if weight.Valid {
			w := weight.Decimal
			share.Weight = &w
		}
		if exp, ok := byID[share.ExpenseID]; ok {
			exp.Shares = append(exp.Shares, share)
		}
	}
	if err := shareRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participant shares: %w", err)
	}

	return expenses, nil
}

// missingReference reports which foreign key of expense has no target row.
func missingReference(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	var payerExists bool
	err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", expense.PaidBy).Scan(&payerExists)
	if err == nil && !payerExists {
		return fmt.Errorf("%w: payer %s", models.ErrUserNotFound, expense.PaidBy)
	}
	if expense.GroupID != "" {
		return fmt.Errorf("%w: %s", models.ErrGroupNotFound, expense.GroupID)
	}
	return models.ErrUserNotFound
}
