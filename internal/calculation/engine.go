package calculation

import (
	"fmt"

	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates the four dashboard calculators. It is
// stateless apart from injected configuration; every run is deterministic
// and safe to call concurrently.
type CalculationEngine struct {
	Paycheck    *PaycheckCalculator
	Risk        domain.RiskThresholds
	WealthTable domain.WealthMultiplierTable
	Logger      Logger
}

// NewCalculationEngine creates an engine over the compiled-in 2025 tables.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(NewDefaultEngineConfig())
}

// NewCalculationEngineWithConfig creates an engine with explicit tables.
func NewCalculationEngineWithConfig(cfg domain.EngineConfig) *CalculationEngine {
	logger := NopLogger{}
	resolver := NewZipStateTaxResolver(cfg.StateRates, cfg.ZipPrefixToState)
	return &CalculationEngine{
		Paycheck: NewPaycheckCalculator(
			NewFederalTaxCalculator(cfg.Federal),
			NewFICACalculator(cfg.FICA),
			resolver,
			logger,
		),
		Risk:        cfg.Risk,
		WealthTable: cfg.WealthTable,
		Logger:      logger,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Paycheck.Logger = l
}

// RunScenario executes whichever calculator blocks the scenario provides and
// aggregates their results.
func (ce *CalculationEngine) RunScenario(scenario *domain.Scenario) (*domain.DashboardResult, error) {
	result := &domain.DashboardResult{Name: scenario.Name}

	if scenario.Drip != nil {
		drip, err := ce.runDrip(scenario.Drip)
		if err != nil {
			return nil, fmt.Errorf("drip: %w", err)
		}
		result.Drip = drip
	}

	if scenario.Option != nil {
		report, err := ce.runOption(scenario.Option)
		if err != nil {
			return nil, fmt.Errorf("option: %w", err)
		}
		result.Option = report
	}

	if scenario.Paycheck != nil {
		report, err := ce.runPaycheck(scenario.Paycheck)
		if err != nil {
			return nil, fmt.Errorf("paycheck: %w", err)
		}
		result.Paycheck = report
	}

	if scenario.Retirement != nil {
		summary, err := ce.runRetirement(scenario.Retirement)
		if err != nil {
			return nil, fmt.Errorf("retirement: %w", err)
		}
		result.Retirement = summary
	}

	return result, nil
}

func (ce *CalculationEngine) runDrip(sc *domain.DripScenario) (*domain.DripComparison, error) {
	in := DripInput{
		TotalCost:      sc.TotalCost,
		TotalShares:    sc.TotalShares,
		AnnualDividend: sc.AnnualDividend,
		Years:          sc.Years,
		GrowthRatePct:  sc.GrowthRatePct,
	}
	if len(sc.Holdings) > 0 {
		in = DripInputFromHoldings(sc.Holdings, sc.Years, sc.GrowthRatePct)
	}
	return CompareDrip(in)
}

func (ce *CalculationEngine) runOption(sc *domain.OptionScenario) (*domain.OptionReport, error) {
	metrics, err := EvaluateOption(sc.OptionParameters)
	if err != nil {
		return nil, err
	}

	histVol := sc.HistoricalVol
	if histVol == 0 && len(sc.Prices) > 0 {
		histVol, err = HistoricalVolatility(sc.Prices)
		if err != nil {
			return nil, err
		}
	}

	return &domain.OptionReport{
		Metrics: metrics,
		Risk:    ClassifyRisk(metrics, sc.ImpliedVol, histVol, ce.Risk),
	}, nil
}

func (ce *CalculationEngine) runPaycheck(sc *domain.PaycheckScenario) (*domain.PaycheckReport, error) {
	perPeriod, err := ce.Paycheck.Calculate(PaycheckInput{
		GrossPay:          sc.GrossPay,
		PayFrequency:      sc.PayFrequency,
		FilingStatus:      sc.FilingStatus,
		Allowances:        sc.Allowances,
		ZipCode:           sc.ZipCode,
		PreTaxDeductions:  sc.PreTaxDeductions,
		PostTaxDeductions: sc.PostTaxDeductions,
	})
	if err != nil {
		return nil, err
	}
	return &domain.PaycheckReport{
		PerPeriod: perPeriod,
		Yearly:    ce.Paycheck.ProjectAnnual(perPeriod, sc.PayFrequency),
	}, nil
}

func (ce *CalculationEngine) runRetirement(sc *domain.RetirementScenario) (*domain.RetirementSummary, error) {
	projection, err := ProjectRetirement(RetirementInput{
		CurrentAge:          sc.CurrentAge,
		RetirementAge:       sc.RetirementAge,
		CurrentSavings:      sc.CurrentSavings,
		MonthlyContribution: sc.MonthlyContribution,
		ExpectedReturnPct:   sc.ExpectedReturnPct,
		InflationPct:        sc.InflationPct,
		AnnualSpending:      sc.AnnualSpending,
	})
	if err != nil {
		return nil, err
	}

	summary := &domain.RetirementSummary{
		Projection:   projection,
		FinalBalance: projection[len(projection)-1].Balance,
		Fire: ComputeFireNumbers(FireInput{
			AnnualSpending:    sc.AnnualSpending,
			ExpectedReturnPct: sc.ExpectedReturnPct,
			YearsToRetirement: sc.RetirementAge - sc.CurrentAge,
			PartTimeIncome:    sc.PartTimeIncome,
		}),
	}

	for _, p := range projection {
		if p.Age == sc.RetirementAge {
			summary.BalanceAtRetire = p.Balance
		}
		if p.Phase == domain.PhaseRetirement && p.Balance.IsZero() && summary.DepletionAge == nil {
			age := p.Age
			summary.DepletionAge = &age
		}
	}

	annualContribution := sc.AnnualContribution
	if annualContribution.IsZero() {
		annualContribution = sc.MonthlyContribution.Mul(twelve)
	}
	summary.ContributionValueAt65 = FutureValueAtRetirement(&ce.WealthTable, sc.CurrentAge, annualContribution)

	if sc.WithdrawalRatePct.GreaterThan(decimal.Zero) {
		crossover, err := FindCrossover(CrossoverInput{
			CurrentAge:         sc.CurrentAge,
			CurrentSavings:     sc.CurrentSavings,
			AnnualContribution: annualContribution,
			ExpectedReturnPct:  sc.ExpectedReturnPct,
			WithdrawalRatePct:  sc.WithdrawalRatePct,
			AnnualExpenses:     sc.AnnualSpending,
			HorizonYears:       sc.CrossoverHorizonYears,
		})
		if err != nil {
			return nil, err
		}
		summary.Crossover = crossover
	}

	return summary, nil
}
