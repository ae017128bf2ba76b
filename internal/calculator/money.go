// Package calculator holds the pure arithmetic behind PayLash: splitting an
// amount into participant shares and reducing shares into balances.
// Nothing here touches storage; callers load rows and pass them in.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/amirmtaati/paylash/internal/models"
)

// MinorUnits is the number of fractional digits money amounts carry.
const MinorUnits = 2

var oneCent = decimal.New(1, -MinorUnits)

// IsCents reports whether d has no more than MinorUnits fractional digits.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(MinorUnits))
}

// ValidateAmount checks that amount is strictly positive and expressible in cents.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", models.ErrInvalidAmount, amount)
	}
	if !IsCents(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", models.ErrInvalidAmount, amount, MinorUnits)
	}
	return nil
}

// ParseAmount parses a decimal string such as "60", "120.50" or "1,5".
// A comma is accepted as the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	normalized := make([]rune, 0, len(s))
	for _, r := range s {
		if r == ',' {
			r = '.'
		}
		normalized = append(normalized, r)
	}
	amount, err := decimal.NewFromString(string(normalized))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", models.ErrInvalidAmount, s)
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}
