package domain

import (
	"time"

	"github.com/finsight/finance-engine/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// PayoutFrequency is how often a holding pays its dividend.
type PayoutFrequency string

const (
	PayoutMonthly   PayoutFrequency = "monthly"
	PayoutQuarterly PayoutFrequency = "quarterly"
	PayoutAnnually  PayoutFrequency = "annually"
)

// Holding represents a single dividend-paying position.
type Holding struct {
	Symbol          string          `json:"symbol" yaml:"symbol"`
	Shares          decimal.Decimal `json:"shares" yaml:"shares"`
	CostBasis       decimal.Decimal `json:"cost_basis" yaml:"cost_basis"`
	AnnualDividend  decimal.Decimal `json:"annual_dividend" yaml:"annual_dividend"` // per share
	PayoutFrequency PayoutFrequency `json:"payout_frequency" yaml:"payout_frequency"`
	NextExDividend  time.Time       `json:"next_ex_dividend" yaml:"next_ex_dividend"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty" yaml:"payment_date,omitempty"`
	DripEnabled     bool            `json:"drip_enabled" yaml:"drip_enabled"`
}

// PayoutsPerYear returns the number of dividend payments per year.
func (h *Holding) PayoutsPerYear() int {
	return dateutil.PayoutsPerYear(string(h.PayoutFrequency))
}

// AnnualDividendIncome returns the total annual dividend the position throws off.
func (h *Holding) AnnualDividendIncome() decimal.Decimal {
	return h.AnnualDividend.Mul(h.Shares)
}

// DividendPerPayout returns the dollar amount of a single payout.
func (h *Holding) DividendPerPayout() decimal.Decimal {
	return h.AnnualDividendIncome().Div(decimal.NewFromInt(int64(h.PayoutsPerYear())))
}

// UpcomingPayouts returns the payout dates between from and horizon, stepped
// from the next ex-dividend date.
func (h *Holding) UpcomingPayouts(from, horizon time.Time) []time.Time {
	return dateutil.NextPayoutDates(h.NextExDividend, string(h.PayoutFrequency), from, horizon)
}

// TotalAnnualDividends sums annual dividend income over a set of holdings.
func TotalAnnualDividends(holdings []Holding) decimal.Decimal {
	total := decimal.Zero
	for i := range holdings {
		total = total.Add(holdings[i].AnnualDividendIncome())
	}
	return total
}

// TotalCostBasis sums the cost basis over a set of holdings.
func TotalCostBasis(holdings []Holding) decimal.Decimal {
	total := decimal.Zero
	for i := range holdings {
		total = total.Add(holdings[i].CostBasis)
	}
	return total
}

// TotalShares sums share counts over a set of holdings.
func TotalShares(holdings []Holding) decimal.Decimal {
	total := decimal.Zero
	for i := range holdings {
		total = total.Add(holdings[i].Shares)
	}
	return total
}
