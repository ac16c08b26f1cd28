package calculation

import (
	"fmt"

	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCrossoverHorizonYears bounds the crossover search when the caller
// does not supply a horizon.
const DefaultCrossoverHorizonYears = 50

// CrossoverInput drives the passive-income crossover search.
type CrossoverInput struct {
	CurrentAge         int
	CurrentSavings     decimal.Decimal
	AnnualContribution decimal.Decimal
	ExpectedReturnPct  decimal.Decimal
	WithdrawalRatePct  decimal.Decimal
	AnnualExpenses     decimal.Decimal
	HorizonYears       int // 0 means DefaultCrossoverHorizonYears
}

// Validate rejects inputs the search cannot handle.
func (in *CrossoverInput) Validate() error {
	if in.WithdrawalRatePct.LessThanOrEqual(decimal.Zero) || in.WithdrawalRatePct.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("%w: withdrawal rate must be in (0%%, 20%%], got %s%%",
			ErrParameterOutOfRange, in.WithdrawalRatePct.String())
	}
	if in.AnnualExpenses.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: annual expenses must be positive", ErrInvalidInput)
	}
	if in.CurrentSavings.IsNegative() || in.AnnualContribution.IsNegative() {
		return fmt.Errorf("%w: savings and contribution cannot be negative", ErrInvalidInput)
	}
	if in.HorizonYears < 0 {
		return fmt.Errorf("%w: horizon cannot be negative, got %d", ErrParameterOutOfRange, in.HorizonYears)
	}
	return nil
}

// FindCrossover scans forward one year at a time until passive income
// (savings times the withdrawal rate) first meets or exceeds fixed annual
// expenses. Savings grow at the expected return with the contribution added
// each year.
//
// Not reaching the crossover within the horizon is a normal outcome, reported
// as a nil result, not an error.
func FindCrossover(in CrossoverInput) (*domain.CrossoverResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	horizon := in.HorizonYears
	if horizon == 0 {
		horizon = DefaultCrossoverHorizonYears
	}

	growth := decimal.NewFromInt(1).Add(in.ExpectedReturnPct.Div(oneHundred))
	withdrawalRate := in.WithdrawalRatePct.Div(oneHundred)

	savings := in.CurrentSavings
	for year := 1; year <= horizon; year++ {
		savings = savings.Mul(growth).Add(in.AnnualContribution)
		passive := savings.Mul(withdrawalRate)
		if passive.GreaterThanOrEqual(in.AnnualExpenses) {
			return &domain.CrossoverResult{
				Year:          year,
				Age:           in.CurrentAge + year,
				PassiveIncome: passive,
				Savings:       savings,
			}, nil
		}
	}
	return nil, nil
}
