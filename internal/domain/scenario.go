package domain

import (
	"github.com/shopspring/decimal"
)

// DripScenario is the input block for a dividend reinvestment projection.
type DripScenario struct {
	TotalCost      decimal.Decimal `json:"total_cost" yaml:"total_cost"`
	TotalShares    decimal.Decimal `json:"total_shares" yaml:"total_shares"`
	AnnualDividend decimal.Decimal `json:"annual_dividend" yaml:"annual_dividend"`
	Years          int             `json:"years" yaml:"years"`
	GrowthRatePct  decimal.Decimal `json:"growth_rate_pct" yaml:"growth_rate_pct"`
	Holdings       []Holding       `json:"holdings,omitempty" yaml:"holdings,omitempty"` // optional; aggregated into the totals when present
}

// OptionScenario is the input block for the options probability engine.
type OptionScenario struct {
	OptionParameters `yaml:",inline"`
	HistoricalVol    float64   `json:"historical_vol,omitempty" yaml:"historical_vol,omitempty"`
	Prices           []float64 `json:"prices,omitempty" yaml:"prices,omitempty"` // optional daily closes for the historical-vol estimate
}

// PaycheckScenario is the input block for the paycheck allocator.
type PaycheckScenario struct {
	GrossPay          decimal.Decimal `json:"gross_pay" yaml:"gross_pay"`
	PayFrequency      PayFrequency    `json:"pay_frequency" yaml:"pay_frequency"`
	FilingStatus      FilingStatus    `json:"filing_status" yaml:"filing_status"`
	Allowances        int             `json:"allowances" yaml:"allowances"`
	ZipCode           string          `json:"zip_code" yaml:"zip_code"`
	PreTaxDeductions  []Deduction     `json:"pre_tax_deductions" yaml:"pre_tax_deductions"`
	PostTaxDeductions []Deduction     `json:"post_tax_deductions" yaml:"post_tax_deductions"`
}

// RetirementScenario is the input block for the retirement/FIRE projector.
type RetirementScenario struct {
	CurrentAge            int             `json:"current_age" yaml:"current_age"`
	RetirementAge         int             `json:"retirement_age" yaml:"retirement_age"`
	CurrentSavings        decimal.Decimal `json:"current_savings" yaml:"current_savings"`
	MonthlyContribution   decimal.Decimal `json:"monthly_contribution" yaml:"monthly_contribution"`
	ExpectedReturnPct     decimal.Decimal `json:"expected_return_pct" yaml:"expected_return_pct"`
	InflationPct          decimal.Decimal `json:"inflation_pct" yaml:"inflation_pct"`
	AnnualSpending        decimal.Decimal `json:"annual_spending" yaml:"annual_spending"`
	WithdrawalRatePct     decimal.Decimal `json:"withdrawal_rate_pct" yaml:"withdrawal_rate_pct"`
	AnnualContribution    decimal.Decimal `json:"annual_contribution" yaml:"annual_contribution"` // crossover + wealth multiplier input
	PartTimeIncome        decimal.Decimal `json:"part_time_income" yaml:"part_time_income"`       // barista FIRE offset
	CrossoverHorizonYears int             `json:"crossover_horizon_years" yaml:"crossover_horizon_years"`
}

// Scenario is one dashboard run: any subset of the four calculator blocks.
type Scenario struct {
	Name       string              `json:"name" yaml:"name"`
	Drip       *DripScenario       `json:"drip,omitempty" yaml:"drip,omitempty"`
	Option     *OptionScenario     `json:"option,omitempty" yaml:"option,omitempty"`
	Paycheck   *PaycheckScenario   `json:"paycheck,omitempty" yaml:"paycheck,omitempty"`
	Retirement *RetirementScenario `json:"retirement,omitempty" yaml:"retirement,omitempty"`
}

// OptionReport pairs the evaluated metrics with the risk classification.
type OptionReport struct {
	Metrics *OptionMetrics `json:"metrics"`
	Risk    RiskLevel      `json:"risk"`
}

// PaycheckReport pairs the per-period result with its annual projection.
type PaycheckReport struct {
	PerPeriod *PaycheckResult `json:"per_period"`
	Yearly    *YearlyPaycheck `json:"yearly"`
}

// DashboardResult aggregates the outputs for whichever blocks a scenario ran.
type DashboardResult struct {
	Name       string             `json:"name"`
	Drip       *DripComparison    `json:"drip,omitempty"`
	Option     *OptionReport      `json:"option,omitempty"`
	Paycheck   *PaycheckReport    `json:"paycheck,omitempty"`
	Retirement *RetirementSummary `json:"retirement,omitempty"`
}
