package service

import (
	"github.com/samber/lo"

	"github.com/amirmtaati/paylash/internal/calculator"
	"github.com/amirmtaati/paylash/internal/models"
	"github.com/amirmtaati/paylash/pkg/api"
)

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		FirstName:   u.FirstName,
		Username:    u.Username,
		Alias:       u.Alias,
		DisplayName: u.DisplayName(),
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		ID:        g.ID,
		Name:      g.Name,
		CreatedBy: g.CreatedBy,
		Members:   g.Members,
		CreatedAt: g.CreatedAt,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      api.NewMoney(e.Amount),
		Currency:    e.Currency,
		PaidBy:      e.PaidBy,
		GroupID:     e.GroupID,
		CreatedAt:   e.CreatedAt,
		Shares: lo.Map(e.Shares, func(s models.ParticipantShare, _ int) api.Share {
			return api.Share{
				UserID:     s.UserID,
				Kind:       string(s.Kind),
				AmountOwed: api.NewMoney(s.AmountOwed),
				Weight:     api.MoneyPtr(s.Weight),
			}
		}),
	}
}

func toAPIExpenses(expenses []*models.Expense) []*api.Expense {
	return lo.Map(expenses, func(e *models.Expense, _ int) *api.Expense { return toAPIExpense(e) })
}

func toAPIMemberBalance(m calculator.MemberBalance, names map[string]string) api.MemberBalance {
	return api.MemberBalance{
		UserID:     m.UserID,
		Name:       names[m.UserID],
		TotalPaid:  api.NewMoney(m.TotalPaid),
		TotalOwed:  api.NewMoney(m.TotalOwed),
		NetBalance: api.NewMoney(m.NetBalance),
	}
}

func toAPIDebt(d calculator.DebtEdge) api.Debt {
	return api.Debt{From: d.From, To: d.To, Amount: api.NewMoney(d.Amount)}
}
