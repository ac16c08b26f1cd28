package domain

import (
	"github.com/shopspring/decimal"
)

// Phase labels which side of the retirement boundary a projection point is on.
type Phase string

const (
	PhaseAccumulation Phase = "Accumulation"
	PhaseRetirement   Phase = "Retirement"
)

// RetirementProjectionPoint is one year of a retirement simulation.
type RetirementProjectionPoint struct {
	Age     int             `json:"age"`
	Balance decimal.Decimal `json:"balance"`
	Phase   Phase           `json:"phase"`
}

// FireNumbers are target portfolio sizes derived from a single annual
// spending figure. All are pure multiples of the same base, so they stay
// consistent when spending changes.
type FireNumbers struct {
	AnnualSpending decimal.Decimal `json:"annual_spending"`
	Standard       decimal.Decimal `json:"standard"` // 25x
	Lean           decimal.Decimal `json:"lean"`     // 20x
	Fat            decimal.Decimal `json:"fat"`      // 33.33x
	Coast          decimal.Decimal `json:"coast"`    // standard discounted to today
	Barista        decimal.Decimal `json:"barista"`  // standard net of part-time income coverage
}

// CrossoverResult marks the first year passive income covers expenses.
type CrossoverResult struct {
	Year          int             `json:"year"` // years from now, 1-based
	Age           int             `json:"age"`
	PassiveIncome decimal.Decimal `json:"passive_income"`
	Savings       decimal.Decimal `json:"savings"`
}

// RetirementSummary bundles the projector outputs for one scenario run.
type RetirementSummary struct {
	Projection      []RetirementProjectionPoint `json:"projection"`
	Fire            FireNumbers                 `json:"fire"`
	Crossover       *CrossoverResult            `json:"crossover,omitempty"` // nil when not reached in horizon
	DepletionAge    *int                        `json:"depletion_age,omitempty"`
	BalanceAtRetire decimal.Decimal             `json:"balance_at_retirement"`
	FinalBalance    decimal.Decimal             `json:"final_balance"`

	// ContributionValueAt65 is what one year's contribution invested at the
	// current age grows to by 65, per the wealth multiplier table.
	ContributionValueAt65 decimal.Decimal `json:"contribution_value_at_65"`
}

// PeakBalance returns the largest balance in the projection.
func (rs *RetirementSummary) PeakBalance() decimal.Decimal {
	peak := decimal.Zero
	for _, p := range rs.Projection {
		if p.Balance.GreaterThan(peak) {
			peak = p.Balance
		}
	}
	return peak
}
