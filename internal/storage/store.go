// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/amirmtaati/paylash/internal/models"
)

// Store is the full record store the ledger runs against.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger or service layers.
type Store interface {
	UserStore
	GroupStore
	ExpenseStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists users and their aliases.
type UserStore interface {
	// UpsertUser inserts the user or refreshes its names if the ID exists.
	// CreatedAt is kept from the first registration.
	UpsertUser(ctx context.Context, user *models.User) error

	// GetUser returns models.ErrUserNotFound if the ID is unknown.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// GetUserByAlias resolves an active, normalized alias.
	// Returns models.ErrUserNotFound if no user holds it as active alias.
	GetUserByAlias(ctx context.Context, alias string) (*models.User, error)

	// GetUsersByIDs returns a map of user ID to User.
	// Users that don't exist are omitted from the result.
	GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error)

	// SetAlias claims alias for the user and makes it the active one.
	// Aliases the user held before stay reserved to them.
	// Returns models.ErrAliasTaken if another user holds it.
	SetAlias(ctx context.Context, userID, alias string) error

	// ReleaseAlias frees an alias the user holds.
	// Returns models.ErrAliasNotHeld otherwise.
	ReleaseAlias(ctx context.Context, userID, alias string) error
}

// GroupStore persists groups and memberships.
type GroupStore interface {
	// CreateGroup persists a new group and adds its creator as first member.
	// The group.ID and CreatedAt fields are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup returns models.ErrGroupNotFound if the ID is unknown.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser returns every group the user is a member of.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)

	// AddGroupMember returns models.ErrAlreadyMember for an existing pair.
	AddGroupMember(ctx context.Context, groupID, userID string) error
}

// ExpenseStore persists expenses together with their participant shares.
type ExpenseStore interface {
	// CreateExpense persists the expense and all of its shares in one
	// transaction: either every row is written or none is.
	// IDs and CreatedAt are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense returns models.ErrExpenseNotFound if the ID is unknown.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup returns a group's expenses, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// ListExpensesForUser returns every expense the user paid or has a share
	// in, optionally restricted to one group (empty groupID means all).
	ListExpensesForUser(ctx context.Context, userID, groupID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense and its shares.
	DeleteExpense(ctx context.Context, expenseID string) error
}
