package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finance-engine/internal/domain"
)

func fullScenario() *domain.Scenario {
	return &domain.Scenario{
		Name: "full dashboard",
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
			},
			HistoricalVol: 0.28,
		},
		Paycheck: &domain.PaycheckScenario{
			GrossPay:     decimal.NewFromInt(5000),
			PayFrequency: domain.PayBiweekly,
			FilingStatus: domain.FilingSingle,
			ZipCode:      "19001",
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
	}
}

func TestRunScenario_AllBlocks(t *testing.T) {
	engine := NewCalculationEngine()
	result, err := engine.RunScenario(fullScenario())
	require.NoError(t, err)

	assert.Equal(t, "full dashboard", result.Name)
	require.NotNil(t, result.Drip)
	require.NotNil(t, result.Option)
	require.NotNil(t, result.Paycheck)
	require.NotNil(t, result.Retirement)

	assert.Len(t, result.Drip.WithDrip, 11)
	assert.NotEmpty(t, result.Option.Risk)
	assert.True(t, result.Paycheck.PerPeriod.NetPay.GreaterThan(decimal.Zero))
	assert.True(t, result.Retirement.BalanceAtRetire.GreaterThan(decimal.Zero))
	assert.NotNil(t, result.Retirement.Crossover, "this scenario reaches its crossover")
	// Age 30 multiplier is 28.1; annual contribution defaults to 12x monthly.
	assert.True(t, result.Retirement.ContributionValueAt65.Equal(decimal.NewFromInt(1500).Mul(decimal.NewFromInt(12)).Mul(decimal.NewFromFloat(28.1))))
}

func TestRunScenario_PartialScenario(t *testing.T) {
	engine := NewCalculationEngine()
	sc := &domain.Scenario{
		Name: "paycheck only",
		Paycheck: &domain.PaycheckScenario{
			GrossPay:     decimal.NewFromInt(3000),
			PayFrequency: domain.PayMonthly,
			FilingStatus: domain.FilingMarried,
		},
	}
	result, err := engine.RunScenario(sc)
	require.NoError(t, err)

	assert.Nil(t, result.Drip)
	assert.Nil(t, result.Option)
	assert.Nil(t, result.Retirement)
	require.NotNil(t, result.Paycheck)
	require.NotNil(t, result.Paycheck.Yearly)
}

func TestRunScenario_ErrorsCarryBlockContext(t *testing.T) {
	engine := NewCalculationEngine()

	sc := fullScenario()
	sc.Drip.Years = 99
	_, err := engine.RunScenario(sc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParameterOutOfRange)
	assert.Contains(t, err.Error(), "drip:")

	sc = fullScenario()
	sc.Option.ImpliedVol = -1
	_, err = engine.RunScenario(sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "option:")
}

func TestRunScenario_OptionHistoricalVolFromPrices(t *testing.T) {
	engine := NewCalculationEngine()
	sc := &domain.Scenario{
		Option: &domain.OptionScenario{
			OptionParameters: domain.OptionParameters{
				UnderlyingPrice: 100,
				Strike:          120,
				ImpliedVol:      0.90,
				DaysToExpiry:    30,
				Premium:         0.50,
				Type:            domain.Call,
			},
			Prices: []float64{100, 100.5, 100.2, 100.8, 100.4, 101},
		},
	}
	result, err := engine.RunScenario(sc)
	require.NoError(t, err)

	// Rich IV over a quiet close series, low ProbITM: Safe.
	assert.Equal(t, domain.RiskSafe, result.Option.Risk)
}

func TestRunScenario_RetirementDepletionAge(t *testing.T) {
	engine := NewCalculationEngine()
	sc := &domain.Scenario{
		Retirement: &domain.RetirementScenario{
			CurrentAge:          50,
			RetirementAge:       55,
			CurrentSavings:      decimal.NewFromInt(100000),
			MonthlyContribution: decimal.NewFromInt(200),
			ExpectedReturnPct:   decimal.NewFromInt(5),
			InflationPct:        decimal.NewFromInt(3),
			AnnualSpending:      decimal.NewFromInt(80000),
		},
	}
	result, err := engine.RunScenario(sc)
	require.NoError(t, err)

	require.NotNil(t, result.Retirement.DepletionAge)
	assert.Greater(t, *result.Retirement.DepletionAge, 55)
	assert.True(t, result.Retirement.FinalBalance.IsZero())
	assert.True(t, result.Retirement.PeakBalance().GreaterThan(decimal.Zero))
	assert.Nil(t, result.Retirement.Crossover, "no withdrawal rate given, crossover not computed")
}

func TestRunScenario_DripFromHoldings(t *testing.T) {
	engine := NewCalculationEngine()
	sc := &domain.Scenario{
		Drip: &domain.DripScenario{
			Years:         5,
			GrowthRatePct: decimal.NewFromInt(5),
			Holdings: []domain.Holding{
				{
					Symbol:         "O",
					Shares:         decimal.NewFromInt(200),
					CostBasis:      decimal.NewFromInt(11000),
					AnnualDividend: decimal.NewFromFloat(3.08),
					DripEnabled:    true,
				},
			},
		},
	}
	result, err := engine.RunScenario(sc)
	require.NoError(t, err)

	require.Len(t, result.Drip.WithDrip, 6)
	assert.True(t, result.Drip.WithDrip[0].Value.Equal(decimal.NewFromInt(11000)))
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger)
	assert.NotNil(t, engine.Paycheck.Logger)
}
