package calculator

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirmtaati/paylash/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func participants(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("u%02d", i+1)
	}
	return ids
}

func sum(allocs []Allocation) decimal.Decimal {
	total := decimal.Zero
	for _, a := range allocs {
		total = total.Add(a.Amount)
	}
	return total
}

func TestAllocateEqual_Conservation(t *testing.T) {
	amounts := []string{"0.01", "0.05", "1", "10.00", "60", "100", "99.99", "1234.57", "0.99"}

	for _, raw := range amounts {
		for n := 1; n <= 20; n++ {
			t.Run(fmt.Sprintf("%s/%d", raw, n), func(t *testing.T) {
				amount := d(raw)
				allocs := AllocateEqual(amount, participants(n))

				require.Len(t, allocs, n)
				assert.True(t, sum(allocs).Equal(amount), "sum %s != amount %s", sum(allocs), amount)

				for _, a := range allocs {
					assert.True(t, IsCents(a.Amount), "share %s is not whole cents", a.Amount)
					assert.Nil(t, a.Weight)
				}
			})
		}
	}
}

func TestAllocateEqual_RemainderGoesToFirstParticipants(t *testing.T) {
	allocs := AllocateEqual(d("100"), []string{"alice", "bob", "charlie"})

	require.Len(t, allocs, 3)
	assert.Equal(t, "alice", allocs[0].UserID)
	assert.Equal(t, "33.34", allocs[0].Amount.StringFixed(2))
	assert.Equal(t, "33.33", allocs[1].Amount.StringFixed(2))
	assert.Equal(t, "33.33", allocs[2].Amount.StringFixed(2))

	allocs = AllocateEqual(d("0.05"), participants(3))
	assert.Equal(t, []string{"0.02", "0.02", "0.01"}, []string{
		allocs[0].Amount.StringFixed(2),
		allocs[1].Amount.StringFixed(2),
		allocs[2].Amount.StringFixed(2),
	})
}

func TestAllocateEqual_AmountSmallerThanParticipants(t *testing.T) {
	allocs := AllocateEqual(d("0.02"), participants(5))

	assert.Equal(t, "0.01", allocs[0].Amount.StringFixed(2))
	assert.Equal(t, "0.01", allocs[1].Amount.StringFixed(2))
	for _, a := range allocs[2:] {
		assert.True(t, a.Amount.IsZero())
	}
	assert.True(t, sum(allocs).Equal(d("0.02")))
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name    string
		req     SplitRequest
		wantErr error
		check   func(t *testing.T, allocs []Allocation)
	}{
		{
			name: "three-way equal split",
			req: SplitRequest{
				Amount:       d("60"),
				Participants: []string{"alice", "bob", "charlie"},
				Kind:         models.SplitEqual,
			},
			check: func(t *testing.T, allocs []Allocation) {
				for _, a := range allocs {
					assert.Equal(t, "20.00", a.Amount.StringFixed(2))
				}
			},
		},
		{
			name: "custom split",
			req: SplitRequest{
				Amount:       d("50"),
				Participants: []string{"alice", "bob"},
				Kind:         models.SplitCustom,
				CustomShares: map[string]decimal.Decimal{"alice": d("30"), "bob": d("20")},
			},
			check: func(t *testing.T, allocs []Allocation) {
				assert.Equal(t, "30.00", allocs[0].Amount.StringFixed(2))
				assert.Equal(t, "20.00", allocs[1].Amount.StringFixed(2))
				require.NotNil(t, allocs[1].Weight)
				assert.True(t, allocs[1].Weight.Equal(d("20")))
			},
		},
		{
			name: "custom split within tolerance",
			req: SplitRequest{
				Amount:       d("10"),
				Participants: []string{"alice", "bob", "charlie"},
				Kind:         models.SplitCustom,
				CustomShares: map[string]decimal.Decimal{"alice": d("3.33"), "bob": d("3.33"), "charlie": d("3.33")},
				Tolerance:    d("0.01"),
			},
		},
		{
			name: "custom split outside tolerance",
			req: SplitRequest{
				Amount:       d("50"),
				Participants: []string{"alice", "bob"},
				Kind:         models.SplitCustom,
				CustomShares: map[string]decimal.Decimal{"alice": d("30"), "bob": d("19.98")},
				Tolerance:    d("0.01"),
			},
			wantErr: models.ErrShareMismatch,
		},
		{
			name: "custom share for non-participant",
			req: SplitRequest{
				Amount:       d("50"),
				Participants: []string{"alice"},
				Kind:         models.SplitCustom,
				CustomShares: map[string]decimal.Decimal{"alice": d("30"), "bob": d("20")},
			},
			wantErr: models.ErrShareMismatch,
		},
		{
			name: "missing custom share",
			req: SplitRequest{
				Amount:       d("50"),
				Participants: []string{"alice", "bob"},
				Kind:         models.SplitCustom,
				CustomShares: map[string]decimal.Decimal{"alice": d("50")},
			},
			wantErr: models.ErrMissingCustomShare,
		},
		{
			name: "negative custom share",
			req: SplitRequest{
				Amount:       d("50"),
				Participants: []string{"alice", "bob"},
				Kind:         models.SplitCustom,
				CustomShares: map[string]decimal.Decimal{"alice": d("60"), "bob": d("-10")},
			},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "zero amount",
			req:     SplitRequest{Amount: d("0"), Participants: []string{"alice"}, Kind: models.SplitEqual},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			req:     SplitRequest{Amount: d("-5"), Participants: []string{"alice"}, Kind: models.SplitEqual},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "sub-cent amount",
			req:     SplitRequest{Amount: d("1.005"), Participants: []string{"alice"}, Kind: models.SplitEqual},
			wantErr: models.ErrInvalidAmount,
		},
		{
			name:    "no participants",
			req:     SplitRequest{Amount: d("10"), Kind: models.SplitEqual},
			wantErr: models.ErrNoParticipants,
		},
		{
			name:    "duplicate participants",
			req:     SplitRequest{Amount: d("10"), Participants: []string{"alice", "bob", "alice"}, Kind: models.SplitEqual},
			wantErr: models.ErrDuplicateParticipant,
		},
		{
			name:    "unknown split kind",
			req:     SplitRequest{Amount: d("10"), Participants: []string{"alice"}, Kind: "percent"},
			wantErr: models.ErrUnsupportedSplitKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocs, err := Allocate(tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, allocs)
				return
			}
			require.NoError(t, err)
			require.Len(t, allocs, len(tt.req.Participants))
			for i, a := range allocs {
				assert.Equal(t, tt.req.Participants[i], a.UserID)
			}
			if tt.check != nil {
				tt.check(t, allocs)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "60", want: "60.00"},
		{in: "120.50", want: "120.50"},
		{in: "1,5", want: "1.50"},
		{in: "1.500", want: "1.50"},
		{in: "1.505", wantErr: true},
		{in: "0", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
