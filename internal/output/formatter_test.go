package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finance-engine/internal/calculation"
	"github.com/finsight/finance-engine/internal/domain"
)

func sampleResult(t *testing.T) *domain.DashboardResult {
	t.Helper()
	engine := calculation.NewCalculationEngine()
	result, err := engine.RunScenario(&domain.Scenario{
		Name: "sample",
		Drip: &domain.DripScenario{
			TotalCost:      decimal.NewFromInt(30425),
			TotalShares:    decimal.NewFromInt(535),
			AnnualDividend: decimal.NewFromFloat(1668.52),
			Years:          5,
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
	})
	require.NoError(t, err)
	return result
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"console", "console"},
		{"CONSOLE", "console"},
		{"text", "console"},
		{"txt", "console"},
		{"json", "json"},
		{"json-pretty", "json"},
		{" csv ", "csv"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.input)
		require.NotNil(t, f, "format %q should resolve", tt.input)
		assert.Equal(t, tt.want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
	assert.ElementsMatch(t, []string{"console", "json", "csv"}, AvailableFormatterNames())
}

func TestConsoleFormatter_SectionsPresent(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleResult(t))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "sample")
	assert.Contains(t, text, "DIVIDEND REINVESTMENT")
	assert.Contains(t, text, "OPTION ANALYSIS")
	assert.Contains(t, text, "PAYCHECK BREAKDOWN")
	assert.Contains(t, text, "RETIREMENT PROJECTION")
	assert.Contains(t, text, "Prob ITM")
	assert.Contains(t, text, "FIRE targets")
}

func TestConsoleFormatter_SkipsAbsentSections(t *testing.T) {
	result := &domain.DashboardResult{Name: "partial"}
	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "partial")
	assert.NotContains(t, text, "DIVIDEND REINVESTMENT")
	assert.NotContains(t, text, "PAYCHECK BREAKDOWN")
}

func TestConsoleFormatter_OverDeductedWarning(t *testing.T) {
	result := &domain.DashboardResult{
		Name: "over",
		Paycheck: &domain.PaycheckReport{
			PerPeriod: &domain.PaycheckResult{
				GrossPay:     decimal.NewFromInt(1000),
				NetPay:       decimal.Zero,
				OverDeducted: true,
				Shortfall:    decimal.NewFromFloat(133.70),
			},
		},
	}
	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARNING: deductions exceed gross pay by $133.70")
}

func TestConsoleFormatter_CrossoverNotReached(t *testing.T) {
	result := &domain.DashboardResult{
		Retirement: &domain.RetirementSummary{
			Fire: domain.FireNumbers{},
		},
	}
	data, err := ConsoleFormatter{}.Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Crossover: not reached within horizon")
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	result := sampleResult(t)
	data, err := JSONFormatter{}.Format(result)
	require.NoError(t, err)

	var decoded domain.DashboardResult
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, result.Name, decoded.Name)
	require.NotNil(t, decoded.Drip)
	assert.Len(t, decoded.Drip.WithDrip, len(result.Drip.WithDrip))
	require.NotNil(t, decoded.Option)
	assert.Equal(t, result.Option.Risk, decoded.Option.Risk)
}

func TestCSVFormatter_ParsesBackCleanly(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleResult(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	var dripRows, retirementRows int
	for _, rec := range records {
		switch rec[0] {
		case "drip":
			dripRows++
		case "retirement":
			retirementRows++
		}
	}
	assert.Equal(t, 6, dripRows, "5-year projection emits 6 snapshots")
	assert.Equal(t, 56, retirementRows, "ages 30 through 85")
}

func TestGenerateReport(t *testing.T) {
	result := sampleResult(t)

	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, GenerateReport(result, "json", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, json.Valid(data))
	})

	t.Run("unknown format", func(t *testing.T) {
		err := GenerateReport(result, "pdf", "")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), "console")
	})
}
