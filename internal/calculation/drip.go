package calculation

import (
	"fmt"

	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Projection bounds for the DRIP calculator. Inputs outside these are
// rejected, not clamped, so behavior stays auditable.
const (
	MinDripYears = 1
	MaxDripYears = 30
)

var (
	maxDividendGrowthPct = decimal.NewFromInt(20)
	oneHundred           = decimal.NewFromInt(100)
	twoHundred           = decimal.NewFromInt(200)
)

// DripInput is the starting state for a dividend reinvestment projection.
type DripInput struct {
	TotalCost      decimal.Decimal
	TotalShares    decimal.Decimal
	AnnualDividend decimal.Decimal
	Years          int
	GrowthRatePct  decimal.Decimal
}

// Validate rejects inputs the recurrence cannot handle.
func (in *DripInput) Validate() error {
	if in.Years < MinDripYears || in.Years > MaxDripYears {
		return fmt.Errorf("%w: years must be between %d and %d, got %d",
			ErrParameterOutOfRange, MinDripYears, MaxDripYears, in.Years)
	}
	if in.GrowthRatePct.IsNegative() || in.GrowthRatePct.GreaterThan(maxDividendGrowthPct) {
		return fmt.Errorf("%w: growth rate must be between 0%% and 20%%, got %s%%",
			ErrParameterOutOfRange, in.GrowthRatePct.String())
	}
	if in.TotalShares.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: total shares must be positive, got %s",
			ErrInvalidInput, in.TotalShares.String())
	}
	if in.TotalCost.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: total cost must be positive, got %s",
			ErrInvalidInput, in.TotalCost.String())
	}
	if in.AnnualDividend.IsNegative() {
		return fmt.Errorf("%w: annual dividend cannot be negative, got %s",
			ErrInvalidInput, in.AnnualDividend.String())
	}
	return nil
}

// priceGrowthFactor returns the per-year price appreciation factor.
//
// Price appreciates at HALF the assumed dividend growth rate (rate/200, not
// rate/100). This 2:1 dividend-to-price growth ratio is a deliberate modeling
// constant, not a bug; do not "fix" it to the full rate.
func priceGrowthFactor(growthRatePct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(growthRatePct.Div(twoHundred))
}

// dividendGrowthFactor returns the per-year dividend growth factor (rate/100).
func dividendGrowthFactor(growthRatePct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(growthRatePct.Div(oneHundred))
}

// ProjectDrip runs the reinvested projection. It returns years+1 snapshots,
// year 0 reflecting the starting state. Snapshot values are rounded to whole
// units for display stability; the internal recurrence stays unrounded.
func ProjectDrip(in DripInput) ([]domain.GrowthSnapshot, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return projectDrip(in, true), nil
}

// ProjectWithoutDrip runs the comparator projection: price still appreciates
// at the half rate and dividends still grow, but they are never reinvested
// into new shares.
func ProjectWithoutDrip(in DripInput) ([]domain.GrowthSnapshot, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return projectDrip(in, false), nil
}

// CompareDrip produces both sequences from identical starting state so the
// year-N values are directly comparable ("DRIP advantage").
func CompareDrip(in DripInput) (*domain.DripComparison, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &domain.DripComparison{
		WithDrip:    projectDrip(in, true),
		WithoutDrip: projectDrip(in, false),
	}, nil
}

func projectDrip(in DripInput, reinvest bool) []domain.GrowthSnapshot {
	value := in.TotalCost
	shares := in.TotalShares
	dividend := in.AnnualDividend
	dripShares := decimal.Zero

	divGrowth := dividendGrowthFactor(in.GrowthRatePct)
	priceGrowth := priceGrowthFactor(in.GrowthRatePct)

	snapshots := make([]domain.GrowthSnapshot, 0, in.Years+1)
	for year := 0; year <= in.Years; year++ {
		snapshots = append(snapshots, domain.GrowthSnapshot{
			Year:       year,
			Value:      value.Round(0),
			Dividends:  dividend.Round(0),
			DripShares: dripShares.Round(0),
		})

		avgPrice := value.Div(shares)
		if reinvest {
			newShares := dividend.Div(avgPrice)
			dripShares = dripShares.Add(newShares)
			shares = shares.Add(newShares)
		}
		dividend = dividend.Mul(divGrowth)
		value = shares.Mul(avgPrice).Mul(priceGrowth)
	}
	return snapshots
}

// DripInputFromHoldings aggregates a holdings list into projection totals.
// Only DRIP-enabled holdings contribute reinvestable dividends; the rest
// still contribute cost basis and shares.
func DripInputFromHoldings(holdings []domain.Holding, years int, growthRatePct decimal.Decimal) DripInput {
	dividend := decimal.Zero
	for i := range holdings {
		if holdings[i].DripEnabled {
			dividend = dividend.Add(holdings[i].AnnualDividendIncome())
		}
	}
	return DripInput{
		TotalCost:      domain.TotalCostBasis(holdings),
		TotalShares:    domain.TotalShares(holdings),
		AnnualDividend: dividend,
		Years:          years,
		GrowthRatePct:  growthRatePct,
	}
}
