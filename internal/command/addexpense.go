// Package command parses the text payloads of chat commands into typed values.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirmtaati/paylash/internal/calculator"
	"github.com/amirmtaati/paylash/internal/models"
)

// ErrInvalidPayload is returned for any payload the grammar does not accept.
var ErrInvalidPayload = errors.New("invalid command payload")

// AddExpenseUsage describes the /addexpense grammar.
const AddExpenseUsage = "Usage: /addexpense <group name> <amount> [description]"

// AddExpense is a parsed /addexpense payload.
type AddExpense struct {
	GroupName   string
	Amount      decimal.Decimal
	Description string
}

// payloadError carries the message shown to the chat user.
type payloadError struct {
	msg string
}

func (e *payloadError) Error() string { return e.msg }

func (e *payloadError) Is(target error) bool { return target == ErrInvalidPayload }

func invalid(format string, args ...any) error {
	return &payloadError{msg: fmt.Sprintf(format, args...)}
}

// ParseAddExpense parses "<group name words> <amount> [description]".
//
// The first numeric token after at least one group word is the amount.
// Everything before it is the group name, everything after it the
// description, which defaults to "Shared expense".
//
//	"Trip to Rome 120.50 Hotel stay" → ("Trip to Rome", 120.50, "Hotel stay")
//	"Pizza Night 45"                 → ("Pizza Night", 45, "Shared expense")
func ParseAddExpense(payload string) (*AddExpense, error) {
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return nil, invalid("%s", AddExpenseUsage)
	}

	amountIdx := -1
	for i, f := range fields {
		if looksNumeric(f) {
			amountIdx = i
			break
		}
	}

	switch amountIdx {
	case -1:
		return nil, invalid("Missing amount after group name.")
	case 0:
		return nil, invalid("Missing group name before amount.")
	}

	amount, err := calculator.ParseAmount(fields[amountIdx])
	if err != nil {
		return nil, invalid("Invalid amount %q: use a positive number with at most two decimals.", fields[amountIdx])
	}

	description := strings.Join(fields[amountIdx+1:], " ")
	if description == "" {
		description = models.DefaultDescription
	}

	return &AddExpense{
		GroupName:   strings.Join(fields[:amountIdx], " "),
		Amount:      amount,
		Description: description,
	}, nil
}

// looksNumeric reports whether s is made of digits with at most one '.' or ','.
func looksNumeric(s string) bool {
	digits, seps := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == ',':
			seps++
		default:
			return false
		}
	}
	return digits > 0 && seps <= 1
}
