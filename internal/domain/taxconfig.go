package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one marginal bracket. Max of the top bracket is effectively
// unbounded (a very large sentinel in the compiled-in tables).
type TaxBracket struct {
	Min  decimal.Decimal `json:"min" yaml:"min"`
	Max  decimal.Decimal `json:"max" yaml:"max"`
	Rate decimal.Decimal `json:"rate" yaml:"rate"`
}

// FederalTaxConfig carries the year's bracket tables keyed by filing status
// plus the per-allowance sheltered amount. Versionable independently of the
// calculation code.
type FederalTaxConfig struct {
	Year            int                           `json:"year" yaml:"year"`
	Brackets        map[FilingStatus][]TaxBracket `json:"brackets" yaml:"brackets"`
	AllowanceAmount decimal.Decimal               `json:"allowance_amount" yaml:"allowance_amount"`
}

// FICAConfig carries the Social Security and Medicare rates and the annual
// SS wage base cap.
type FICAConfig struct {
	SocialSecurityRate     decimal.Decimal `json:"social_security_rate" yaml:"social_security_rate"`
	SocialSecurityWageBase decimal.Decimal `json:"social_security_wage_base" yaml:"social_security_wage_base"`
	MedicareRate           decimal.Decimal `json:"medicare_rate" yaml:"medicare_rate"`
}

// StateLocalRates are the flat state and local income tax rates resolved for
// a ZIP code. The engine never embeds per-state tax law; rates arrive here.
type StateLocalRates struct {
	State     string          `json:"state" yaml:"state"`
	StateRate decimal.Decimal `json:"state_rate" yaml:"state_rate"`
	LocalRate decimal.Decimal `json:"local_rate" yaml:"local_rate"`
}

// WealthMultiplierTable maps a starting age to the factor $1 invested at that
// age grows to by 65 at an assumed 10% return. Ages outside the table fall
// back to DefaultMultiplier.
type WealthMultiplierTable struct {
	Multipliers       map[int]decimal.Decimal `json:"multipliers" yaml:"multipliers"`
	DefaultMultiplier decimal.Decimal         `json:"default_multiplier" yaml:"default_multiplier"`
	MinAge            int                     `json:"min_age" yaml:"min_age"`
	MaxAge            int                     `json:"max_age" yaml:"max_age"`
}

// Lookup returns the multiplier for an age, falling back to the default for
// ages outside [MinAge, MaxAge].
func (t *WealthMultiplierTable) Lookup(age int) decimal.Decimal {
	if age < t.MinAge || age > t.MaxAge {
		return t.DefaultMultiplier
	}
	if m, ok := t.Multipliers[age]; ok {
		return m
	}
	return t.DefaultMultiplier
}

// EngineConfig aggregates every static table the calculators consume. Loaded
// once at startup; all calculators stay pure functions over it.
type EngineConfig struct {
	Federal          FederalTaxConfig           `json:"federal" yaml:"federal"`
	FICA             FICAConfig                 `json:"fica" yaml:"fica"`
	StateRates       map[string]StateLocalRates `json:"state_rates" yaml:"state_rates"` // keyed by state code
	ZipPrefixToState map[string]string          `json:"zip_prefix_to_state" yaml:"zip_prefix_to_state"`
	Risk             RiskThresholds             `json:"risk" yaml:"risk"`
	WealthTable      WealthMultiplierTable      `json:"wealth_table" yaml:"wealth_table"`
}
