package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/amirmtaati/paylash/internal/calculator"
	"github.com/amirmtaati/paylash/internal/ledger"
	"github.com/amirmtaati/paylash/internal/models"
	"github.com/amirmtaati/paylash/pkg/api"
	"github.com/amirmtaati/paylash/pkg/api/apiconnect"
)

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)

var (
	errNotInvolved = errors.New("you must be the payer or a participant of this expense")
	errNotPayer    = errors.New("only the payer can delete an expense")
)

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	ledger *ledger.Ledger
}

// NewLedgerService creates a new LedgerService backed by l.
func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: l}
}

// involved reports whether userID paid or has a share in e.
func involved(e *models.Expense, userID string) bool {
	return e.PaidBy == userID || lo.ContainsBy(e.Shares, func(s models.ParticipantShare) bool {
		return s.UserID == userID
	})
}

// CreateExpense records an expense split among its participants.
func (s *LedgerService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	msg := req.Msg
	payerID := lo.Ternary(msg.PayerID != "", msg.PayerID, userID)

	if msg.GroupID != "" {
		if _, err := memberGroup(ctx, s.ledger, msg.GroupID, userID); err != nil {
			return nil, toConnectError("CreateExpense", err)
		}
	} else if payerID != userID && !lo.Contains(msg.ParticipantIDs, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotInvolved)
	}

	slog.Debug("CreateExpense request",
		"payer_id", payerID,
		"group_id", msg.GroupID,
		"amount", msg.Amount.String(),
		"split", msg.SplitKind,
		"participants", msg.ParticipantIDs,
	)

	var custom map[string]decimal.Decimal
	if msg.CustomShares != nil {
		custom = lo.MapValues(msg.CustomShares, func(m api.Money, _ string) decimal.Decimal { return m.Decimal })
	}

	expense, err := s.ledger.CreateExpenseWithSplit(ctx, ledger.CreateExpenseRequest{
		Description:    msg.Description,
		Amount:         msg.Amount.Decimal,
		PayerID:        payerID,
		GroupID:        msg.GroupID,
		ParticipantIDs: msg.ParticipantIDs,
		SplitKind:      models.SplitKind(msg.SplitKind),
		CustomShares:   custom,
		Currency:       msg.Currency,
	})
	if err != nil {
		return nil, toConnectError("CreateExpense", err)
	}

	return connect.NewResponse(&api.CreateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// GetExpense retrieves an expense the acting user is involved in or can see through its group.
func (s *LedgerService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	expense, err := s.ledger.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError("GetExpense", err)
	}
	if !involved(expense, userID) {
		if expense.GroupID == "" {
			return nil, connect.NewError(connect.CodePermissionDenied, errNotInvolved)
		}
		if _, err := memberGroup(ctx, s.ledger, expense.GroupID, userID); err != nil {
			return nil, toConnectError("GetExpense", err)
		}
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses lists a group's expenses, or the acting user's own when no group is given.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}

	var expenses []*models.Expense
	if req.Msg.GroupID != "" {
		if _, err := memberGroup(ctx, s.ledger, req.Msg.GroupID, userID); err != nil {
			return nil, toConnectError("ListExpenses", err)
		}
		expenses, err = s.ledger.ListExpenses(ctx, req.Msg.GroupID)
	} else {
		expenses, err = s.ledger.ListUserExpenses(ctx, userID)
	}
	if err != nil {
		return nil, toConnectError("ListExpenses", err)
	}

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: toAPIExpenses(expenses)}), nil
}

// DeleteExpense removes an expense the acting user paid.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	expense, err := s.ledger.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}
	if expense.PaidBy != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotPayer)
	}

	if err := s.ledger.DeleteExpense(ctx, expense.ID); err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// GetBalances returns the acting user's net balance with every counterparty.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.GroupID != "" {
		if _, err := memberGroup(ctx, s.ledger, req.Msg.GroupID, userID); err != nil {
			return nil, toConnectError("GetBalances", err)
		}
	}

	balances, err := s.ledger.GetNetBalancesWithNames(ctx, userID, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError("GetBalances", err)
	}

	return connect.NewResponse(&api.GetBalancesResponse{
		Balances: lo.Map(balances, func(b ledger.NamedBalance, _ int) api.Balance {
			return api.Balance{CounterpartyID: b.CounterpartyID, Name: b.Name, Amount: api.NewMoney(b.Amount)}
		}),
	}), nil
}

// GetGroupBalances returns every member's position and the simplified debts of a group.
func (s *LedgerService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if _, err := memberGroup(ctx, s.ledger, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError("GetGroupBalances", err)
	}

	view, err := s.ledger.GetGroupBalances(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError("GetGroupBalances", err)
	}

	ids := make([]string, 0, len(view.Members))
	for _, m := range view.Members {
		ids = append(ids, m.UserID)
	}
	names, err := s.ledger.DisplayNames(ctx, ids)
	if err != nil {
		return nil, toConnectError("GetGroupBalances", err)
	}

	members := make([]api.MemberBalance, len(view.Members))
	for i, m := range view.Members {
		members[i] = toAPIMemberBalance(m, names)
	}

	return connect.NewResponse(&api.GetGroupBalancesResponse{
		Members: members,
		Debts:   lo.Map(view.Debts, func(d calculator.DebtEdge, _ int) api.Debt { return toAPIDebt(d) }),
	}), nil
}

// RecordSettlement records that the acting user repaid another user.
func (s *LedgerService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	if req.Msg.GroupID != "" {
		if _, err := memberGroup(ctx, s.ledger, req.Msg.GroupID, userID); err != nil {
			return nil, toConnectError("RecordSettlement", err)
		}
	}

	to, err := s.ledger.ResolveUser(ctx, req.Msg.ToID)
	if err != nil {
		return nil, toConnectError("RecordSettlement", err)
	}

	expense, err := s.ledger.RecordSettlement(ctx, userID, to.ID, req.Msg.Amount.Decimal, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError("RecordSettlement", err)
	}

	slog.Info("Settlement recorded", "from", userID, "to", to.ID, "amount", expense.Amount.StringFixed(2))
	return connect.NewResponse(&api.RecordSettlementResponse{Expense: toAPIExpense(expense)}), nil
}

// AddExpenseFromText records an /addexpense payload for the acting user.
func (s *LedgerService) AddExpenseFromText(ctx context.Context, req *connect.Request[api.AddExpenseFromTextRequest]) (*connect.Response[api.AddExpenseFromTextResponse], error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	expense, err := s.ledger.AddExpenseFromText(ctx, userID, req.Msg.Text)
	if err != nil {
		return nil, toConnectError("AddExpenseFromText", err)
	}
	return connect.NewResponse(&api.AddExpenseFromTextResponse{Expense: toAPIExpense(expense)}), nil
}
