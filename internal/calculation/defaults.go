package calculation

import (
	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Compiled-in 2025 tables. Static configuration data loaded once, injected
// into the calculators; versionable independently of the calculation code.

// bracketMax stands in for "no upper bound" on the top bracket.
var bracketMax = decimal.NewFromInt(999999999)

func bracket(min, max int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromFloat(rate),
	}
}

func topBracket(min int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  bracketMax,
		Rate: decimal.NewFromFloat(rate),
	}
}

// NewFederalTaxConfig2025 returns the 2025 federal bracket tables for all
// four filing statuses plus the per-allowance sheltered amount.
func NewFederalTaxConfig2025() domain.FederalTaxConfig {
	return domain.FederalTaxConfig{
		Year:            2025,
		AllowanceAmount: decimal.NewFromInt(4300),
		Brackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.FilingSingle: {
				bracket(0, 11925, 0.10),
				bracket(11925, 48475, 0.12),
				bracket(48475, 103350, 0.22),
				bracket(103350, 197300, 0.24),
				bracket(197300, 250525, 0.32),
				bracket(250525, 626350, 0.35),
				topBracket(626350, 0.37),
			},
			domain.FilingMarried: {
				bracket(0, 23850, 0.10),
				bracket(23850, 96950, 0.12),
				bracket(96950, 206700, 0.22),
				bracket(206700, 394600, 0.24),
				bracket(394600, 501050, 0.32),
				bracket(501050, 751600, 0.35),
				topBracket(751600, 0.37),
			},
			domain.FilingMarriedSeparate: {
				bracket(0, 11925, 0.10),
				bracket(11925, 48475, 0.12),
				bracket(48475, 103350, 0.22),
				bracket(103350, 197300, 0.24),
				bracket(197300, 250525, 0.32),
				bracket(250525, 375800, 0.35),
				topBracket(375800, 0.37),
			},
			domain.FilingHeadOfHousehold: {
				bracket(0, 17000, 0.10),
				bracket(17000, 64850, 0.12),
				bracket(64850, 103350, 0.22),
				bracket(103350, 197300, 0.24),
				bracket(197300, 250525, 0.32),
				bracket(250525, 626350, 0.35),
				topBracket(626350, 0.37),
			},
		},
	}
}

// NewFICAConfig2025 returns the 2025 FICA rates and SS wage base.
func NewFICAConfig2025() domain.FICAConfig {
	return domain.FICAConfig{
		SocialSecurityRate:     decimal.NewFromFloat(0.062),
		SocialSecurityWageBase: decimal.NewFromInt(176100),
		MedicareRate:           decimal.NewFromFloat(0.0145),
	}
}

// DefaultStateRates holds simplified flat state/local income tax rates for
// the states the default resolver knows about. Real per-bracket state law
// stays outside the core.
func DefaultStateRates() map[string]domain.StateLocalRates {
	rate := func(state string, stateRate, localRate float64) domain.StateLocalRates {
		return domain.StateLocalRates{
			State:     state,
			StateRate: decimal.NewFromFloat(stateRate),
			LocalRate: decimal.NewFromFloat(localRate),
		}
	}
	return map[string]domain.StateLocalRates{
		"CA": rate("CA", 0.060, 0),
		"NY": rate("NY", 0.055, 0.030),
		"PA": rate("PA", 0.0307, 0.010),
		"TX": rate("TX", 0, 0),
		"FL": rate("FL", 0, 0),
		"WA": rate("WA", 0, 0),
		"IL": rate("IL", 0.0495, 0),
		"MA": rate("MA", 0.050, 0),
		"NJ": rate("NJ", 0.0525, 0),
		"OH": rate("OH", 0.030, 0.020),
		"GA": rate("GA", 0.0549, 0),
		"NC": rate("NC", 0.0425, 0),
		"CO": rate("CO", 0.044, 0),
		"AZ": rate("AZ", 0.025, 0),
	}
}

// DefaultZipPrefixes maps leading ZIP digits to a state code for the default
// resolver. Three-digit prefixes are checked before single digits.
func DefaultZipPrefixes() map[string]string {
	return map[string]string{
		"900": "CA", "901": "CA", "941": "CA", "945": "CA",
		"100": "NY", "101": "NY", "112": "NY",
		"150": "PA", "189": "PA", "190": "PA", "191": "PA",
		"750": "TX", "770": "TX", "787": "TX",
		"331": "FL", "328": "FL",
		"980": "WA", "981": "WA",
		"606": "IL", "607": "IL",
		"021": "MA", "022": "MA",
		"070": "NJ", "071": "NJ",
		"432": "OH", "441": "OH",
		"303": "GA",
		"275": "NC", "282": "NC",
		"802": "CO",
		"850": "AZ",
	}
}

// NewDefaultStateTaxResolver builds the compiled-in ZIP resolver. Unknown
// ZIP codes resolve to zero state/local rates rather than failing, matching
// the dashboard's behavior for unlisted locations.
func NewDefaultStateTaxResolver() StateTaxResolver {
	rates := DefaultStateRates()
	prefixes := DefaultZipPrefixes()
	return NewZipStateTaxResolver(rates, prefixes)
}

// ZipStateTaxResolver resolves ZIP codes against configured prefix and rate
// tables.
type ZipStateTaxResolver struct {
	Rates    map[string]domain.StateLocalRates
	Prefixes map[string]string
}

// NewZipStateTaxResolver builds a resolver over the supplied tables.
func NewZipStateTaxResolver(rates map[string]domain.StateLocalRates, prefixes map[string]string) *ZipStateTaxResolver {
	return &ZipStateTaxResolver{Rates: rates, Prefixes: prefixes}
}

// Resolve looks up the three-digit ZIP prefix, then the single leading digit.
// Unknown ZIPs get zero rates, not an error.
func (r *ZipStateTaxResolver) Resolve(zipCode string) (domain.StateLocalRates, error) {
	for _, n := range []int{3, 1} {
		if len(zipCode) >= n {
			if state, ok := r.Prefixes[zipCode[:n]]; ok {
				if rates, ok := r.Rates[state]; ok {
					return rates, nil
				}
			}
		}
	}
	return domain.StateLocalRates{StateRate: decimal.Zero, LocalRate: decimal.Zero}, nil
}

// DefaultRiskThresholds are the dashboard's stock risk-bucket defaults.
func DefaultRiskThresholds() domain.RiskThresholds {
	return domain.RiskThresholds{
		SafeMaxProbITM:  0.30,
		RiskyMinProbITM: 0.70,
		MinIVRichness:   1.0,
	}
}

// NewWealthMultiplierTable returns the compounding factors of $1 invested at
// each starting age until 65 at an assumed 10% return. Ages outside [20,65]
// fall back to 50, the dashboard's documented default.
func NewWealthMultiplierTable() domain.WealthMultiplierTable {
	return domain.WealthMultiplierTable{
		MinAge:            20,
		MaxAge:            65,
		DefaultMultiplier: decimal.NewFromInt(50),
		Multipliers: map[int]decimal.Decimal{
			20: decimal.NewFromFloat(72.9),
			21: decimal.NewFromFloat(66.3),
			22: decimal.NewFromFloat(60.2),
			23: decimal.NewFromFloat(54.8),
			24: decimal.NewFromFloat(49.8),
			25: decimal.NewFromFloat(45.3),
			26: decimal.NewFromFloat(41.1),
			27: decimal.NewFromFloat(37.4),
			28: decimal.NewFromFloat(34.0),
			29: decimal.NewFromFloat(30.9),
			30: decimal.NewFromFloat(28.1),
			31: decimal.NewFromFloat(25.5),
			32: decimal.NewFromFloat(23.2),
			33: decimal.NewFromFloat(21.1),
			34: decimal.NewFromFloat(19.2),
			35: decimal.NewFromFloat(17.4),
			36: decimal.NewFromFloat(15.9),
			37: decimal.NewFromFloat(14.4),
			38: decimal.NewFromFloat(13.1),
			39: decimal.NewFromFloat(11.9),
			40: decimal.NewFromFloat(10.8),
			41: decimal.NewFromFloat(9.8),
			42: decimal.NewFromFloat(9.0),
			43: decimal.NewFromFloat(8.1),
			44: decimal.NewFromFloat(7.4),
			45: decimal.NewFromFloat(6.7),
			46: decimal.NewFromFloat(6.1),
			47: decimal.NewFromFloat(5.6),
			48: decimal.NewFromFloat(5.1),
			49: decimal.NewFromFloat(4.6),
			50: decimal.NewFromFloat(4.2),
			51: decimal.NewFromFloat(3.8),
			52: decimal.NewFromFloat(3.5),
			53: decimal.NewFromFloat(3.1),
			54: decimal.NewFromFloat(2.9),
			55: decimal.NewFromFloat(2.6),
			56: decimal.NewFromFloat(2.4),
			57: decimal.NewFromFloat(2.1),
			58: decimal.NewFromFloat(1.9),
			59: decimal.NewFromFloat(1.8),
			60: decimal.NewFromFloat(1.6),
			61: decimal.NewFromFloat(1.5),
			62: decimal.NewFromFloat(1.3),
			63: decimal.NewFromFloat(1.2),
			64: decimal.NewFromFloat(1.1),
			65: decimal.NewFromFloat(1.0),
		},
	}
}

// NewDefaultEngineConfig bundles every compiled-in table.
func NewDefaultEngineConfig() domain.EngineConfig {
	return domain.EngineConfig{
		Federal:          NewFederalTaxConfig2025(),
		FICA:             NewFICAConfig2025(),
		StateRates:       DefaultStateRates(),
		ZipPrefixToState: DefaultZipPrefixes(),
		Risk:             DefaultRiskThresholds(),
		WealthTable:      NewWealthMultiplierTable(),
	}
}
