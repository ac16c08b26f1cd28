package domain

import (
	"github.com/shopspring/decimal"
)

// PayFrequency is how often a paycheck arrives.
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiweekly    PayFrequency = "biweekly"
	PaySemimonthly PayFrequency = "semimonthly"
	PayMonthly     PayFrequency = "monthly"
)

// PeriodsPerYear returns pay periods per year. Unrecognized frequencies
// default to biweekly (26).
func (f PayFrequency) PeriodsPerYear() int {
	switch f {
	case PayWeekly:
		return 52
	case PayBiweekly:
		return 26
	case PaySemimonthly:
		return 24
	case PayMonthly:
		return 12
	default:
		return 26
	}
}

// FilingStatus selects the federal bracket table.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarried         FilingStatus = "married"
	FilingMarriedSeparate FilingStatus = "marriedSeparate"
	FilingHeadOfHousehold FilingStatus = "headOfHousehold"
)

// DeductionKind says how a deduction value is interpreted.
type DeductionKind string

const (
	DeductionPercentage DeductionKind = "percentage" // value is a percent of gross pay
	DeductionAmount     DeductionKind = "amount"     // value is a flat dollar amount
)

// Deduction is one payroll deduction. Deductions are independent and summed;
// list order carries no numeric meaning.
type Deduction struct {
	Label string          `json:"label" yaml:"label"`
	Value decimal.Decimal `json:"value" yaml:"value"`
	Kind  DeductionKind   `json:"kind" yaml:"kind"`
}

// TaxBreakdown holds per-period tax amounts plus the rates shown to the user.
type TaxBreakdown struct {
	Federal        decimal.Decimal `json:"federal"`
	State          decimal.Decimal `json:"state"`
	Local          decimal.Decimal `json:"local"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`

	FederalRate decimal.Decimal `json:"federal_rate"` // effective, vs taxable income
	StateRate   decimal.Decimal `json:"state_rate"`
	LocalRate   decimal.Decimal `json:"local_rate"`
}

// Total sums all tax components.
func (tb *TaxBreakdown) Total() decimal.Decimal {
	return tb.Federal.Add(tb.State).Add(tb.Local).Add(tb.SocialSecurity).Add(tb.Medicare)
}

// PaycheckResult is the gross-to-net decomposition for one pay period.
//
// When deductions exceed gross pay, NetPay is clamped at zero, OverDeducted is
// set, and Shortfall carries the overage, preserving the identity:
//
//	GrossPay = PreTaxDeductions + TotalTaxes + PostTaxDeductions + NetPay - Shortfall
type PaycheckResult struct {
	GrossPay          decimal.Decimal `json:"gross_pay"`
	PreTaxDeductions  decimal.Decimal `json:"pre_tax_deductions"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	Taxes             TaxBreakdown    `json:"taxes"`
	TotalTaxes        decimal.Decimal `json:"total_taxes"`
	PostTaxDeductions decimal.Decimal `json:"post_tax_deductions"`
	NetPay            decimal.Decimal `json:"net_pay"`
	OverDeducted      bool            `json:"over_deducted"`
	Shortfall         decimal.Decimal `json:"shortfall"`
}

// YearlyPaycheck is the per-period result scaled to a full year. Social
// Security is capped at the annual wage base rather than scaled linearly.
type YearlyPaycheck struct {
	GrossPay          decimal.Decimal `json:"gross_pay"`
	PreTaxDeductions  decimal.Decimal `json:"pre_tax_deductions"`
	Taxes             TaxBreakdown    `json:"taxes"`
	TotalTaxes        decimal.Decimal `json:"total_taxes"`
	PostTaxDeductions decimal.Decimal `json:"post_tax_deductions"`
	NetPay            decimal.Decimal `json:"net_pay"`
}
