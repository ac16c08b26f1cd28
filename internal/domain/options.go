package domain

// OptionType distinguishes calls from puts. Every directional formula in the
// engine branches on it; there is no call-only default.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// OptionParameters are the inputs to the probability engine. Float64 because
// the math underneath is transcendental (erf, exp, sqrt).
type OptionParameters struct {
	UnderlyingPrice float64    `json:"underlying_price" yaml:"underlying_price"`
	Strike          float64    `json:"strike" yaml:"strike"`
	ImpliedVol      float64    `json:"implied_vol" yaml:"implied_vol"` // decimal, e.g. 0.35
	DaysToExpiry    int        `json:"days_to_expiry" yaml:"days_to_expiry"`
	Premium         float64    `json:"premium" yaml:"premium"`
	Type            OptionType `json:"type" yaml:"type"`
	HourlyTheta     float64    `json:"hourly_theta,omitempty" yaml:"hourly_theta,omitempty"`
}

// OptionMetrics are the derived quantities for one contract.
type OptionMetrics struct {
	ExpectedMove     float64 `json:"expected_move"`
	Breakeven        float64 `json:"breakeven"`
	ProbITM          float64 `json:"prob_itm"`
	ProbOfProfit     float64 `json:"prob_of_profit"`
	Delta            float64 `json:"delta"`
	Gamma            float64 `json:"gamma"`
	IntrinsicValue   float64 `json:"intrinsic_value"`
	TimeValue        float64 `json:"time_value"`
	DailyThetaImpact float64 `json:"daily_theta_impact"`
	IsITM            bool    `json:"is_itm"`
}

// RiskLevel buckets a position by assignment/loss likelihood.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "Safe"
	RiskNeutral RiskLevel = "Neutral"
	RiskRisky   RiskLevel = "Risky"
)

// RiskThresholds configure the classifier. Policy, not physics: callers tune
// these, the engine never hardcodes them.
type RiskThresholds struct {
	SafeMaxProbITM  float64 `json:"safe_max_prob_itm" yaml:"safe_max_prob_itm"`   // below this, candidate for Safe
	RiskyMinProbITM float64 `json:"risky_min_prob_itm" yaml:"risky_min_prob_itm"` // above this, Risky
	MinIVRichness   float64 `json:"min_iv_richness" yaml:"min_iv_richness"`       // IV/historical-vol ratio required for Safe
}
