package domain

import (
	"github.com/shopspring/decimal"
)

// GrowthSnapshot is one year of a dividend reinvestment projection. Display
// values are rounded to whole dollars/shares for stability across runs.
type GrowthSnapshot struct {
	Year       int             `json:"year"`
	Value      decimal.Decimal `json:"value"`
	Dividends  decimal.Decimal `json:"dividends"`
	DripShares decimal.Decimal `json:"drip_shares"` // cumulative shares acquired via reinvestment
}

// DripComparison holds the reinvested and non-reinvested projections produced
// from identical starting state, so year-N values are directly comparable.
type DripComparison struct {
	WithDrip    []GrowthSnapshot `json:"with_drip"`
	WithoutDrip []GrowthSnapshot `json:"without_drip"`
}

// Advantage returns withDrip[year].Value - withoutDrip[year].Value.
func (dc *DripComparison) Advantage(year int) decimal.Decimal {
	if year < 0 || year >= len(dc.WithDrip) || year >= len(dc.WithoutDrip) {
		return decimal.Zero
	}
	return dc.WithDrip[year].Value.Sub(dc.WithoutDrip[year].Value)
}

// FinalAdvantage returns the advantage at the projection horizon.
func (dc *DripComparison) FinalAdvantage() decimal.Decimal {
	return dc.Advantage(len(dc.WithDrip) - 1)
}
