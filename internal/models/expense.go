package models

import "github.com/shopspring/decimal"

// SplitKind is the policy that divides an expense amount into participant shares.
type SplitKind string

const (
	// SplitEqual divides the amount evenly, handing leftover cents to the
	// first participants in input order.
	SplitEqual SplitKind = "equal"

	// SplitCustom takes each participant's amount from a caller-supplied map.
	SplitCustom SplitKind = "custom"
)

// Valid reports whether k is a known split kind.
func (k SplitKind) Valid() bool {
	return k == SplitEqual || k == SplitCustom
}

// DefaultDescription is used when an expense is recorded without a description.
const DefaultDescription = "Shared expense"

// Expense is a single recorded payment with one payer and one or more
// obligated participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Description is a free-text label (e.g., "Hotel", "Dominos Pizza").
	Description string

	// Amount is the total paid, with two fractional digits.
	Amount decimal.Decimal

	// Currency is the ISO 4217 code of Amount.
	Currency string

	// PaidBy is the user ID of the payer.
	PaidBy string

	// GroupID is the owning group; empty for a personal expense.
	GroupID string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64

	// Shares holds one entry per participant. Always non-empty once persisted.
	Shares []ParticipantShare
}

// ParticipantShare is the portion of an Expense attributed to one participant.
// Shares are immutable; corrections delete and recreate the whole expense.
type ParticipantShare struct {
	// ID is the unique identifier for the share (UUID format).
	ID string

	// ExpenseID is the owning expense.
	ExpenseID string

	// UserID is the participant who owes AmountOwed to the payer.
	UserID string

	// Kind is the split policy the share was computed with.
	Kind SplitKind

	// AmountOwed is what the participant owes, with two fractional digits.
	AmountOwed decimal.Decimal

	// Weight is the caller-supplied custom amount; nil for equal shares.
	Weight *decimal.Decimal
}

// ShareTotal sums AmountOwed over all shares of the expense.
func (e *Expense) ShareTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range e.Shares {
		total = total.Add(s.AmountOwed)
	}
	return total
}
