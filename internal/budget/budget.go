// Package budget computes the clamped percentages behind a budget
// category's stacked spend bar.
//
// The bar shows three segments — spent, committed, available — whose
// percentages always fit in [0,100] and never together exceed 100, even
// when the underlying amounts are over budget. Overage is not hidden: the
// unclamped PercentUsed figure and the (possibly negative) available
// amount carry it to the display.
package budget

import "github.com/opencare-au/profileview/internal/profile"

// Bar holds the derived display values for one budget category.
type Bar struct {
	SpentPct        float64 `json:"spent_pct"`
	CommittedPct    float64 `json:"committed_pct"`
	AvailablePct    float64 `json:"available_pct"`
	AvailableAmount float64 `json:"available_amount"`
}

// Compute derives the bar segments from raw amounts.
//
// A non-positive allocation is a defined edge case, not an error: all
// percentages are 0. Otherwise spent is clamped to 100, committed is
// clamped against the room remaining after spent (so the two never sum
// past 100), and available takes whatever room is left. AvailableAmount
// is never clamped and goes negative when the category is over-committed.
func Compute(allocated, spent, committed float64) Bar {
	if allocated <= 0 {
		return Bar{AvailableAmount: allocated - spent - committed}
	}

	spentPct := spent / allocated * 100
	if spentPct > 100 {
		spentPct = 100
	}
	committedPct := committed / allocated * 100
	if committedPct > 100-spentPct {
		committedPct = 100 - spentPct
	}
	availablePct := 100 - spentPct - committedPct
	if availablePct < 0 {
		availablePct = 0
	}

	return Bar{
		SpentPct:        spentPct,
		CommittedPct:    committedPct,
		AvailablePct:    availablePct,
		AvailableAmount: allocated - spent - committed,
	}
}

// ComputeFor derives the bar for a budget category record.
func ComputeFor(cat profile.PlanBudgetCategory) Bar {
	return Compute(cat.AllocatedAmount, cat.SpentAmount, cat.CommittedAmount)
}

// PercentUsed is the category header's usage figure:
// (spent + committed) / allocated * 100, deliberately unclamped so a
// figure above 100 signals overspend. Zero allocation reports 0.
func PercentUsed(allocated, spent, committed float64) float64 {
	if allocated <= 0 {
		return 0
	}
	return (spent + committed) / allocated * 100
}

// Band is the usage severity band for the category header.
type Band string

const (
	BandNormal Band = "normal"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// UsageBand bands an unclamped percent-used figure: above 90 is high,
// above 70 is medium, anything else is normal.
func UsageBand(pctUsed float64) Band {
	switch {
	case pctUsed > 90:
		return BandHigh
	case pctUsed > 70:
		return BandMedium
	default:
		return BandNormal
	}
}
