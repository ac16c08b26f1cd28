package config

import (
	"fmt"
	"os"

	"github.com/finsight/finance-engine/internal/calculation"
	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ScenarioFile is the on-disk YAML shape: one scenario plus optional table
// overrides for the compiled-in defaults.
type ScenarioFile struct {
	domain.Scenario `yaml:",inline"`
	Tables          *TableOverrides `yaml:"tables,omitempty"`
}

// TableOverrides replace compiled-in tables wholesale when present.
type TableOverrides struct {
	Federal          *domain.FederalTaxConfig          `yaml:"federal,omitempty"`
	FICA             *domain.FICAConfig                `yaml:"fica,omitempty"`
	StateRates       map[string]domain.StateLocalRates `yaml:"state_rates,omitempty"`
	ZipPrefixToState map[string]string                 `yaml:"zip_prefix_to_state,omitempty"`
	Risk             *domain.RiskThresholds            `yaml:"risk,omitempty"`
	WealthTable      *domain.WealthMultiplierTable     `yaml:"wealth_table,omitempty"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&sf.Scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &sf, nil
}

// EngineConfig merges table overrides over the compiled-in defaults.
func (sf *ScenarioFile) EngineConfig() domain.EngineConfig {
	cfg := calculation.NewDefaultEngineConfig()
	if sf.Tables == nil {
		return cfg
	}
	if sf.Tables.Federal != nil {
		cfg.Federal = *sf.Tables.Federal
	}
	if sf.Tables.FICA != nil {
		cfg.FICA = *sf.Tables.FICA
	}
	if len(sf.Tables.StateRates) > 0 {
		cfg.StateRates = sf.Tables.StateRates
	}
	if len(sf.Tables.ZipPrefixToState) > 0 {
		cfg.ZipPrefixToState = sf.Tables.ZipPrefixToState
	}
	if sf.Tables.Risk != nil {
		cfg.Risk = *sf.Tables.Risk
	}
	if sf.Tables.WealthTable != nil {
		cfg.WealthTable = *sf.Tables.WealthTable
	}
	return cfg
}

// ValidateScenario checks that at least one calculator block is present and
// that each present block passes its range checks. Out-of-range values are
// rejected here, never clamped.
func (ip *InputParser) ValidateScenario(s *domain.Scenario) error {
	if s.Drip == nil && s.Option == nil && s.Paycheck == nil && s.Retirement == nil {
		return fmt.Errorf("%w: scenario must contain at least one of drip, option, paycheck, retirement",
			calculation.ErrInvalidInput)
	}

	if s.Drip != nil {
		if err := ip.validateDrip(s.Drip); err != nil {
			return fmt.Errorf("drip: %w", err)
		}
	}
	if s.Option != nil {
		if err := ip.validateOption(s.Option); err != nil {
			return fmt.Errorf("option: %w", err)
		}
	}
	if s.Paycheck != nil {
		if err := ip.validatePaycheck(s.Paycheck); err != nil {
			return fmt.Errorf("paycheck: %w", err)
		}
	}
	if s.Retirement != nil {
		if err := ip.validateRetirement(s.Retirement); err != nil {
			return fmt.Errorf("retirement: %w", err)
		}
	}
	return nil
}

func (ip *InputParser) validateDrip(sc *domain.DripScenario) error {
	if sc.Years < calculation.MinDripYears || sc.Years > calculation.MaxDripYears {
		return fmt.Errorf("%w: years must be between %d and %d",
			calculation.ErrParameterOutOfRange, calculation.MinDripYears, calculation.MaxDripYears)
	}
	for i := range sc.Holdings {
		h := &sc.Holdings[i]
		if h.Shares.IsNegative() {
			return fmt.Errorf("%w: holding %s has negative shares", calculation.ErrInvalidInput, h.Symbol)
		}
		if h.CostBasis.IsNegative() {
			return fmt.Errorf("%w: holding %s has negative cost basis", calculation.ErrInvalidInput, h.Symbol)
		}
	}
	if len(sc.Holdings) == 0 && sc.TotalShares.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: total shares must be positive", calculation.ErrInvalidInput)
	}
	return nil
}

func (ip *InputParser) validateOption(sc *domain.OptionScenario) error {
	if sc.Type != domain.Call && sc.Type != domain.Put {
		return fmt.Errorf("%w: option type must be 'call' or 'put', got %q", calculation.ErrInvalidInput, sc.Type)
	}
	if sc.UnderlyingPrice <= 0 || sc.Strike <= 0 {
		return fmt.Errorf("%w: price and strike must be positive", calculation.ErrInvalidInput)
	}
	return nil
}

func (ip *InputParser) validatePaycheck(sc *domain.PaycheckScenario) error {
	if sc.GrossPay.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: gross pay must be positive", calculation.ErrInvalidInput)
	}
	switch sc.FilingStatus {
	case domain.FilingSingle, domain.FilingMarried, domain.FilingMarriedSeparate, domain.FilingHeadOfHousehold:
	default:
		return fmt.Errorf("%w: unknown filing status %q", calculation.ErrInvalidInput, sc.FilingStatus)
	}
	return nil
}

func (ip *InputParser) validateRetirement(sc *domain.RetirementScenario) error {
	if sc.RetirementAge <= sc.CurrentAge {
		return fmt.Errorf("%w: retirement age must be after current age", calculation.ErrParameterOutOfRange)
	}
	if sc.CurrentSavings.IsNegative() || sc.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: savings and contribution cannot be negative", calculation.ErrInvalidInput)
	}
	return nil
}

// CreateExampleScenario builds a scenario exercising all four calculators,
// used by `finsight init` and the integration tests.
func (ip *InputParser) CreateExampleScenario() *ScenarioFile {
	return &ScenarioFile{
		Scenario: domain.Scenario{
			Name: "Example Dashboard",
			Drip: &domain.DripScenario{
				TotalCost:      decimal.NewFromInt(30425),
				TotalShares:    decimal.NewFromInt(535),
				AnnualDividend: decimal.NewFromFloat(1668.52),
				Years:          10,
				GrowthRatePct:  decimal.NewFromInt(5),
			},
			Option: &domain.OptionScenario{
				OptionParameters: domain.OptionParameters{
					UnderlyingPrice: 100,
					Strike:          105,
					ImpliedVol:      0.35,
					DaysToExpiry:    30,
					Premium:         1.85,
					Type:            domain.Call,
					HourlyTheta:     -0.012,
				},
				HistoricalVol: 0.28,
			},
			Paycheck: &domain.PaycheckScenario{
				GrossPay:     decimal.NewFromInt(5000),
				PayFrequency: domain.PayBiweekly,
				FilingStatus: domain.FilingSingle,
				ZipCode:      "19001",
				PreTaxDeductions: []domain.Deduction{
					{Label: "401k", Value: decimal.NewFromInt(6), Kind: domain.DeductionPercentage},
					{Label: "Health insurance", Value: decimal.NewFromInt(120), Kind: domain.DeductionAmount},
				},
				PostTaxDeductions: []domain.Deduction{
					{Label: "Roth IRA", Value: decimal.NewFromInt(250), Kind: domain.DeductionAmount},
				},
			},
			Retirement: &domain.RetirementScenario{
				CurrentAge:          30,
				RetirementAge:       55,
				CurrentSavings:      decimal.NewFromInt(75000),
				MonthlyContribution: decimal.NewFromInt(1500),
				ExpectedReturnPct:   decimal.NewFromInt(7),
				InflationPct:        decimal.NewFromInt(3),
				AnnualSpending:      decimal.NewFromInt(60000),
				WithdrawalRatePct:   decimal.NewFromInt(4),
			},
		},
	}
}
