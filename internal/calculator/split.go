package calculator

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/amirmtaati/paylash/internal/models"
)

// Allocation is one participant's computed share of an expense.
type Allocation struct {
	UserID string
	Amount decimal.Decimal
	// Weight is the caller-supplied custom amount, nil for equal splits.
	Weight *decimal.Decimal
}

// SplitRequest describes how an amount should be divided.
type SplitRequest struct {
	Amount       decimal.Decimal
	Participants []string
	Kind         models.SplitKind
	CustomShares map[string]decimal.Decimal
	// Tolerance is how far the custom shares may drift from Amount.
	Tolerance decimal.Decimal
}

// Allocate validates req and returns one Allocation per participant, in the
// order the participants were given.
func Allocate(req SplitRequest) ([]Allocation, error) {
	if err := ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if len(req.Participants) == 0 {
		return nil, models.ErrNoParticipants
	}
	if dups := lo.FindDuplicates(req.Participants); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %v", models.ErrDuplicateParticipant, dups)
	}

	switch req.Kind {
	case models.SplitEqual:
		return AllocateEqual(req.Amount, req.Participants), nil
	case models.SplitCustom:
		return AllocateCustom(req.Amount, req.Participants, req.CustomShares, req.Tolerance)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedSplitKind, req.Kind)
	}
}

// AllocateEqual divides amount evenly among participants in whole cents.
//
// Algorithm:
//   - cents = amount × 100, base = cents ÷ n, r = cents mod n
//   - the first r participants (input order) owe base+1 cents, the rest owe base
//
// The allocations always add up to amount exactly. amount must already be
// validated and participants must be non-empty.
func AllocateEqual(amount decimal.Decimal, participants []string) []Allocation {
	n := decimal.NewFromInt(int64(len(participants)))
	base, rem := amount.Shift(MinorUnits).QuoRem(n, 0)
	perPerson := base.Shift(-MinorUnits)
	extra := rem.IntPart()

	allocations := make([]Allocation, len(participants))
	for i, p := range participants {
		share := perPerson
		if int64(i) < extra {
			share = share.Add(oneCent)
		}
		allocations[i] = Allocation{UserID: p, Amount: share}
	}
	return allocations
}

// AllocateCustom takes each participant's share from custom.
//
// Every participant needs an entry, entries for non-participants are
// rejected, and the shares must add up to amount within tolerance.
func AllocateCustom(amount decimal.Decimal, participants []string, custom map[string]decimal.Decimal, tolerance decimal.Decimal) ([]Allocation, error) {
	for _, p := range participants {
		if _, ok := custom[p]; !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrMissingCustomShare, p)
		}
	}

	extra, _ := lo.Difference(lo.Keys(custom), participants)
	if len(extra) > 0 {
		slices.Sort(extra)
		return nil, fmt.Errorf("%w: shares given for non-participants %v", models.ErrShareMismatch, extra)
	}

	allocations := make([]Allocation, len(participants))
	sum := decimal.Zero
	for i, p := range participants {
		share := custom[p]
		if share.IsNegative() || !IsCents(share) {
			return nil, fmt.Errorf("%w: share for %s is %s", models.ErrInvalidAmount, p, share)
		}
		weight := share
		allocations[i] = Allocation{UserID: p, Amount: share, Weight: &weight}
		sum = sum.Add(share)
	}

	if sum.Sub(amount).Abs().GreaterThan(tolerance.Abs()) {
		return nil, fmt.Errorf("%w: shares add up to %s, expense is %s",
			models.ErrShareMismatch, sum.StringFixed(MinorUnits), amount.StringFixed(MinorUnits))
	}

	return allocations, nil
}
