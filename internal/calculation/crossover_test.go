package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossoverInput() CrossoverInput {
	return CrossoverInput{
		CurrentAge:         30,
		CurrentSavings:     decimal.NewFromInt(100000),
		AnnualContribution: decimal.NewFromInt(20000),
		ExpectedReturnPct:  decimal.NewFromInt(7),
		WithdrawalRatePct:  decimal.NewFromInt(4),
		AnnualExpenses:     decimal.NewFromInt(40000),
	}
}

func TestFindCrossover_Reached(t *testing.T) {
	res, err := FindCrossover(crossoverInput())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Greater(t, res.Year, 0)
	assert.Equal(t, 30+res.Year, res.Age)
	assert.True(t, res.PassiveIncome.GreaterThanOrEqual(decimal.NewFromInt(40000)),
		"the reported year is the first where passive income covers expenses")
	assert.True(t, res.PassiveIncome.Equal(res.Savings.Mul(decimal.NewFromFloat(0.04))))

	// The prior year must not have covered expenses yet.
	growth := decimal.NewFromFloat(1.07)
	savings := decimal.NewFromInt(100000)
	for year := 1; year < res.Year; year++ {
		savings = savings.Mul(growth).Add(decimal.NewFromInt(20000))
	}
	priorPassive := savings.Mul(decimal.NewFromFloat(0.04))
	assert.True(t, priorPassive.LessThan(decimal.NewFromInt(40000)),
		"year %d should be the first crossover, but year %d already passed", res.Year, res.Year-1)
}

func TestFindCrossover_NotReachedIsNilNotError(t *testing.T) {
	in := crossoverInput()
	in.AnnualContribution = decimal.Zero
	in.CurrentSavings = decimal.NewFromInt(1000)
	in.ExpectedReturnPct = decimal.NewFromInt(1)
	in.HorizonYears = 10

	res, err := FindCrossover(in)
	require.NoError(t, err, "falling short of the crossover is a valid outcome")
	assert.Nil(t, res)
}

func TestFindCrossover_DefaultHorizon(t *testing.T) {
	// Savings that cross only after ~35 years still resolve under the default
	// 50-year horizon.
	in := crossoverInput()
	in.CurrentSavings = decimal.Zero
	in.AnnualContribution = decimal.NewFromInt(5000)

	res, err := FindCrossover(in)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.LessOrEqual(t, res.Year, DefaultCrossoverHorizonYears)
	assert.Greater(t, res.Year, 20)
}

func TestFindCrossover_ImmediateCrossover(t *testing.T) {
	in := crossoverInput()
	in.CurrentSavings = decimal.NewFromInt(2000000)

	res, err := FindCrossover(in)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Year, "already past the number: first scanned year crosses")
}

func TestFindCrossover_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CrossoverInput)
		wantErr error
	}{
		{"zero withdrawal rate", func(in *CrossoverInput) { in.WithdrawalRatePct = decimal.Zero }, ErrParameterOutOfRange},
		{"withdrawal above 20", func(in *CrossoverInput) { in.WithdrawalRatePct = decimal.NewFromInt(21) }, ErrParameterOutOfRange},
		{"zero expenses", func(in *CrossoverInput) { in.AnnualExpenses = decimal.Zero }, ErrInvalidInput},
		{"negative savings", func(in *CrossoverInput) { in.CurrentSavings = decimal.NewFromInt(-1) }, ErrInvalidInput},
		{"negative horizon", func(in *CrossoverInput) { in.HorizonYears = -1 }, ErrParameterOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := crossoverInput()
			tt.mutate(&in)
			_, err := FindCrossover(in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
