// Package api defines the messages of the paylash.v1 RPC API.
//
// Messages are plain structs carried as JSON over the Connect protocol; see
// package apiconnect for the handlers and clients. Money fields are decimal
// strings with two fractional digits ("20.00").
package api

import "time"

// User is a registered chat user.
type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name,omitempty"`
	Username    string `json:"username,omitempty"`
	Alias       string `json:"alias,omitempty"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

// Group is a named set of members.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedBy string   `json:"created_by"`
	Members   []string `json:"members"`
	CreatedAt int64    `json:"created_at"`
}

// Share is one participant's part of an expense.
type Share struct {
	UserID     string `json:"user_id"`
	Kind       string `json:"kind"`
	AmountOwed Money  `json:"amount_owed"`
	Weight     *Money `json:"weight,omitempty"`
}

// Expense is one recorded payment.
type Expense struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      Money   `json:"amount"`
	Currency    string  `json:"currency"`
	PaidBy      string  `json:"paid_by"`
	GroupID     string  `json:"group_id,omitempty"`
	CreatedAt   int64   `json:"created_at"`
	Shares      []Share `json:"shares"`
}

// Balance is a signed amount between the acting user and a counterparty.
// Positive: the counterparty owes the acting user.
type Balance struct {
	CounterpartyID string `json:"counterparty_id"`
	Name           string `json:"name"`
	Amount         Money  `json:"amount"`
}

// MemberBalance is one member's position within a group.
type MemberBalance struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	TotalPaid  Money  `json:"total_paid"`
	TotalOwed  Money  `json:"total_owed"`
	NetBalance Money  `json:"net_balance"`
}

// Debt is a suggested payment from one member to another.
type Debt struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Money  `json:"amount"`
}

// AuthService

type IssueTokenRequest struct {
	Secret string `json:"secret" validate:"required"`
	UserID string `json:"user_id" validate:"required,max=64"`
}

type IssueTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserService

type RegisterUserRequest struct {
	FirstName string `json:"first_name" validate:"max=64"`
	Username  string `json:"username" validate:"max=64"`
}

type RegisterUserResponse struct {
	User *User `json:"user"`
}

type GetUserRequest struct {
	// Identifier is a user id or an alias, with or without a leading '@'.
	Identifier string `json:"identifier" validate:"required"`
}

type GetUserResponse struct {
	User *User `json:"user"`
}

type SetAliasRequest struct {
	Alias string `json:"alias" validate:"required"`
}

type SetAliasResponse struct {
	Alias string `json:"alias"`
}

type ReleaseAliasRequest struct {
	Alias string `json:"alias" validate:"required"`
}

type ReleaseAliasResponse struct{}

// GroupService

type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type AddMemberRequest struct {
	GroupID    string `json:"group_id" validate:"required"`
	Identifier string `json:"identifier" validate:"required"`
}

type AddMemberResponse struct {
	Group  *Group `json:"group"`
	Member *User  `json:"member"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListMyGroupsRequest struct{}

type ListMyGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

// LedgerService

// CreateExpenseRequest records an expense. PayerID defaults to the acting user.
type CreateExpenseRequest struct {
	Description    string           `json:"description" validate:"max=200"`
	Amount         Money            `json:"amount"`
	PayerID        string           `json:"payer_id,omitempty"`
	GroupID        string           `json:"group_id,omitempty"`
	ParticipantIDs []string         `json:"participant_ids" validate:"dive,required"`
	SplitKind      string           `json:"split_kind"`
	CustomShares   map[string]Money `json:"custom_shares,omitempty"`
	Currency       string           `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
}

type CreateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ExpenseID string `json:"expense_id" validate:"required"`
}

type GetExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	// GroupID lists a group's expenses; empty lists the acting user's own.
	GroupID string `json:"group_id,omitempty"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id" validate:"required"`
}

type DeleteExpenseResponse struct{}

type GetBalancesRequest struct {
	GroupID string `json:"group_id,omitempty"`
}

type GetBalancesResponse struct {
	Balances []Balance `json:"balances"`
}

type GetGroupBalancesRequest struct {
	GroupID string `json:"group_id" validate:"required"`
}

type GetGroupBalancesResponse struct {
	Members []MemberBalance `json:"members"`
	Debts   []Debt          `json:"debts"`
}

type RecordSettlementRequest struct {
	// ToID is the user the acting user repays.
	ToID    string `json:"to_id" validate:"required"`
	Amount  Money  `json:"amount"`
	GroupID string `json:"group_id,omitempty"`
}

type RecordSettlementResponse struct {
	Expense *Expense `json:"expense"`
}

type AddExpenseFromTextRequest struct {
	// Text is the /addexpense payload: "<group name> <amount> [description]".
	Text string `json:"text" validate:"required"`
}

type AddExpenseFromTextResponse struct {
	Expense *Expense `json:"expense"`
}
