package calculation

import (
	"fmt"

	"github.com/finsight/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// RetirementHorizonYears is how far past the retirement age the projection
// runs.
const RetirementHorizonYears = 30

var (
	standardFireMultiple = decimal.NewFromInt(25)
	leanFireMultiple     = decimal.NewFromInt(20)
	fatFireMultiple      = decimal.NewFromFloat(33.33)
	twelve               = decimal.NewFromInt(12)
)

// RetirementInput drives the two-phase accumulation/decumulation simulation.
type RetirementInput struct {
	CurrentAge          int
	RetirementAge       int
	CurrentSavings      decimal.Decimal
	MonthlyContribution decimal.Decimal
	ExpectedReturnPct   decimal.Decimal
	InflationPct        decimal.Decimal
	AnnualSpending      decimal.Decimal // at retirement, today's dollars grown by inflation thereafter
}

// Validate rejects inputs outside the projector's working range.
func (in *RetirementInput) Validate() error {
	if in.CurrentAge < 18 || in.CurrentAge > 100 {
		return fmt.Errorf("%w: current age must be between 18 and 100, got %d", ErrParameterOutOfRange, in.CurrentAge)
	}
	if in.RetirementAge <= in.CurrentAge || in.RetirementAge > 100 {
		return fmt.Errorf("%w: retirement age must be after current age and at most 100, got %d",
			ErrParameterOutOfRange, in.RetirementAge)
	}
	if in.ExpectedReturnPct.LessThan(decimal.NewFromInt(-10)) || in.ExpectedReturnPct.GreaterThan(decimal.NewFromInt(30)) {
		return fmt.Errorf("%w: expected return must be between -10%% and 30%%, got %s%%",
			ErrParameterOutOfRange, in.ExpectedReturnPct.String())
	}
	if in.InflationPct.LessThan(decimal.NewFromInt(-10)) || in.InflationPct.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("%w: inflation must be between -10%% and 20%%, got %s%%",
			ErrParameterOutOfRange, in.InflationPct.String())
	}
	if in.CurrentSavings.IsNegative() {
		return fmt.Errorf("%w: current savings cannot be negative", ErrInvalidInput)
	}
	if in.MonthlyContribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution cannot be negative", ErrInvalidInput)
	}
	if in.AnnualSpending.IsNegative() {
		return fmt.Errorf("%w: annual spending cannot be negative", ErrInvalidInput)
	}
	return nil
}

// ProjectRetirement simulates the portfolio from the current age to thirty
// years past retirement. Accumulation years compound monthly with the monthly
// contribution added after growth; retirement years withdraw inflation-grown
// spending and earn the real (return minus inflation) rate annually.
//
// A depleted portfolio floors at zero and the sequence keeps emitting zero
// balances to the horizon rather than stopping; depletion is terminal but the
// timeline is not truncated.
func ProjectRetirement(in RetirementInput) ([]domain.RetirementProjectionPoint, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	monthlyReturn := in.ExpectedReturnPct.Div(oneHundred).Div(twelve)
	monthlyGrowth := decimal.NewFromInt(1).Add(monthlyReturn)
	realGrowth := decimal.NewFromInt(1).Add(in.ExpectedReturnPct.Sub(in.InflationPct).Div(oneHundred))
	inflationGrowth := decimal.NewFromInt(1).Add(in.InflationPct.Div(oneHundred))

	endAge := in.RetirementAge + RetirementHorizonYears
	points := make([]domain.RetirementProjectionPoint, 0, endAge-in.CurrentAge+1)

	savings := in.CurrentSavings
	for age := in.CurrentAge; age <= endAge; age++ {
		phase := domain.PhaseAccumulation
		if age >= in.RetirementAge {
			phase = domain.PhaseRetirement
		}
		points = append(points, domain.RetirementProjectionPoint{
			Age:     age,
			Balance: savings,
			Phase:   phase,
		})

		if age < in.RetirementAge {
			for month := 0; month < 12; month++ {
				savings = savings.Mul(monthlyGrowth).Add(in.MonthlyContribution)
			}
		} else {
			yearsRetired := age - in.RetirementAge
			adjustedSpending := in.AnnualSpending.Mul(inflationGrowth.Pow(decimal.NewFromInt(int64(yearsRetired))))
			savings = savings.Sub(adjustedSpending).Mul(realGrowth)
			if savings.IsNegative() {
				savings = decimal.Zero
			}
		}
	}

	return points, nil
}

// FireInput feeds the FIRE target family. Every number is a multiple (or
// discount) of the same annual spending base.
type FireInput struct {
	AnnualSpending    decimal.Decimal
	ExpectedReturnPct decimal.Decimal
	YearsToRetirement int
	PartTimeIncome    decimal.Decimal // annual, for the barista variant
}

// ComputeFireNumbers derives the FIRE target family: standard 25x, lean 20x,
// fat 33.33x, coast (standard discounted back by expected growth), barista
// (standard net of the portfolio the part-time income replaces).
func ComputeFireNumbers(in FireInput) domain.FireNumbers {
	standard := in.AnnualSpending.Mul(standardFireMultiple)

	coast := standard
	if in.YearsToRetirement > 0 {
		growth := decimal.NewFromInt(1).Add(in.ExpectedReturnPct.Div(oneHundred))
		coast = standard.Div(growth.Pow(decimal.NewFromInt(int64(in.YearsToRetirement))))
	}

	barista := standard.Sub(in.PartTimeIncome.Mul(standardFireMultiple))
	if barista.IsNegative() {
		barista = decimal.Zero
	}

	return domain.FireNumbers{
		AnnualSpending: in.AnnualSpending,
		Standard:       standard,
		Lean:           in.AnnualSpending.Mul(leanFireMultiple),
		Fat:            in.AnnualSpending.Mul(fatFireMultiple),
		Coast:          coast,
		Barista:        barista,
	}
}

// FutureValueAtRetirement applies the wealth multiplier table: the value at
// 65 of one annual contribution invested at the given age. Ages outside the
// table use its documented fallback multiplier.
func FutureValueAtRetirement(table *domain.WealthMultiplierTable, age int, annualContribution decimal.Decimal) decimal.Decimal {
	return annualContribution.Mul(table.Lookup(age))
}
