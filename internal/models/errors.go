package models

import "errors"

// Validation errors returned when recording an expense.
var (
	ErrInvalidAmount        = errors.New("amount must be positive with at most two decimal places")
	ErrNoParticipants       = errors.New("at least one participant is required")
	ErrUnsupportedSplitKind = errors.New("unsupported split kind")
	ErrMissingCustomShare   = errors.New("missing custom share for participant")
	ErrShareMismatch        = errors.New("custom shares do not add up to the expense amount")
	ErrDuplicateParticipant = errors.New("participant listed more than once")
	ErrInvalidSettlement    = errors.New("a settlement needs two different users")
)

// Lookup and directory errors.
var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrAlreadyMember   = errors.New("user is already a member of the group")
	ErrNotMember       = errors.New("user is not a member of the group")
	ErrAliasTaken      = errors.New("alias is already taken")
	ErrInvalidAlias    = errors.New("alias must be 3-32 characters of a-z, 0-9 or _")
	ErrAliasNotHeld    = errors.New("alias is not held by this user")
	ErrEmptyUserID     = errors.New("user id is required")
	ErrEmptyGroupName  = errors.New("group name is required")
)
