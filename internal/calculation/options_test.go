package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/finance-engine/internal/domain"
)

func callParams() domain.OptionParameters {
	return domain.OptionParameters{
		UnderlyingPrice: 100,
		Strike:          105,
		ImpliedVol:      0.35,
		DaysToExpiry:    30,
		Premium:         1.85,
		Type:            domain.Call,
		HourlyTheta:     -0.012,
	}
}

func TestErf_MatchesStdlib(t *testing.T) {
	// The rational approximation is specified to ~1.5e-7 absolute error.
	for _, x := range []float64{-3, -1.5, -0.5, -0.1, 0, 0.1, 0.5, 1, 1.5, 2, 3} {
		assert.InDelta(t, math.Erf(x), erf(x), 2e-7, "erf(%g)", x)
	}
}

func TestEvaluateOption_ProbabilityBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.OptionParameters)
	}{
		{"near the money call", func(p *domain.OptionParameters) {}},
		{"deep ITM call", func(p *domain.OptionParameters) { p.Strike = 50 }},
		{"deep OTM call", func(p *domain.OptionParameters) { p.Strike = 200 }},
		{"put", func(p *domain.OptionParameters) { p.Type = domain.Put }},
		{"zero DTE", func(p *domain.OptionParameters) { p.DaysToExpiry = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := callParams()
			tt.mutate(&p)
			m, err := EvaluateOption(p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, m.ProbITM, 0.0)
			assert.LessOrEqual(t, m.ProbITM, 1.0)
			assert.GreaterOrEqual(t, m.ProbOfProfit, 0.0)
			assert.LessOrEqual(t, m.ProbOfProfit, 1.0)
			assert.Greater(t, m.ExpectedMove, 0.0)
		})
	}
}

func TestEvaluateOption_ATMCallIsACoinFlip(t *testing.T) {
	p := callParams()
	p.Strike = p.UnderlyingPrice
	m, err := EvaluateOption(p)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m.ProbITM, 1e-9, "at the money, ProbITM must be exactly the distribution midpoint")
	assert.InDelta(t, 0.5, m.Delta, 1e-9)
}

func TestEvaluateOption_PutCallComplementarity(t *testing.T) {
	call := callParams()
	put := callParams()
	put.Type = domain.Put

	mc, err := EvaluateOption(call)
	require.NoError(t, err)
	mp, err := EvaluateOption(put)
	require.NoError(t, err)

	// Same strike and expiry: exactly one side finishes ITM.
	assert.InDelta(t, 1.0, mc.ProbITM+mp.ProbITM, 1e-9)
	assert.Equal(t, mc.ExpectedMove, mp.ExpectedMove)
	assert.InDelta(t, mc.Delta, -mp.Delta, 1e-9)
	assert.Greater(t, mc.Delta, 0.0)
	assert.Less(t, mp.Delta, 0.0)
}

func TestEvaluateOption_CallBranch(t *testing.T) {
	p := callParams()
	p.UnderlyingPrice = 110 // ITM call
	m, err := EvaluateOption(p)
	require.NoError(t, err)

	assert.Equal(t, p.Strike+p.Premium, m.Breakeven)
	assert.Equal(t, 5.0, m.IntrinsicValue)
	assert.InDelta(t, p.Premium-5.0, m.TimeValue, 1e-12)
	assert.True(t, m.IsITM)
	assert.Greater(t, m.ProbITM, 0.5, "an ITM call should be more likely than not to finish ITM")
}

func TestEvaluateOption_PutBranch(t *testing.T) {
	p := callParams()
	p.Type = domain.Put
	p.UnderlyingPrice = 95 // ITM put
	m, err := EvaluateOption(p)
	require.NoError(t, err)

	assert.Equal(t, p.Strike-p.Premium, m.Breakeven)
	assert.Equal(t, 10.0, m.IntrinsicValue)
	assert.True(t, m.IsITM)
	assert.Less(t, m.Delta, 0.0)
	assert.Greater(t, m.ProbITM, 0.5)
}

func TestEvaluateOption_OTMTimeValueIsFullPremium(t *testing.T) {
	p := callParams() // strike 105 vs price 100: OTM
	m, err := EvaluateOption(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.IntrinsicValue)
	assert.Equal(t, p.Premium, m.TimeValue)
	assert.False(t, m.IsITM)
}

func TestEvaluateOption_DailyThetaUsesTradingHours(t *testing.T) {
	p := callParams()
	p.HourlyTheta = -0.02
	m, err := EvaluateOption(p)
	require.NoError(t, err)
	assert.InDelta(t, -0.13, m.DailyThetaImpact, 1e-12, "daily theta is hourly theta times 6.5 trading hours")
}

func TestEvaluateOption_ZeroDTEUsesFlooredTime(t *testing.T) {
	p := callParams()
	p.DaysToExpiry = 0
	m, err := EvaluateOption(p)
	require.NoError(t, err)
	assert.Greater(t, m.ExpectedMove, 0.0, "time floor must keep the expected move positive")
	assert.False(t, math.IsNaN(m.ProbITM))
	assert.False(t, math.IsInf(m.Gamma, 0))
}

func TestEvaluateOption_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.OptionParameters)
		wantErr error
	}{
		{"unknown type", func(p *domain.OptionParameters) { p.Type = "straddle" }, ErrInvalidInput},
		{"zero price", func(p *domain.OptionParameters) { p.UnderlyingPrice = 0 }, ErrInvalidInput},
		{"negative strike", func(p *domain.OptionParameters) { p.Strike = -5 }, ErrInvalidInput},
		{"zero vol", func(p *domain.OptionParameters) { p.ImpliedVol = 0 }, ErrParameterOutOfRange},
		{"absurd vol", func(p *domain.OptionParameters) { p.ImpliedVol = 5.01 }, ErrParameterOutOfRange},
		{"negative DTE", func(p *domain.OptionParameters) { p.DaysToExpiry = -1 }, ErrParameterOutOfRange},
		{"negative premium", func(p *domain.OptionParameters) { p.Premium = -0.5 }, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := callParams()
			tt.mutate(&p)
			_, err := EvaluateOption(p)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassifyRisk(t *testing.T) {
	th := DefaultRiskThresholds()

	tests := []struct {
		name    string
		probITM float64
		iv      float64
		histVol float64
		want    domain.RiskLevel
	}{
		{"high assignment risk", 0.75, 0.35, 0.28, domain.RiskRisky},
		{"low prob rich vol", 0.20, 0.35, 0.28, domain.RiskSafe},
		{"low prob cheap vol", 0.20, 0.20, 0.28, domain.RiskNeutral},
		{"low prob no history", 0.20, 0.35, 0, domain.RiskSafe},
		{"middle of the road", 0.50, 0.35, 0.28, domain.RiskNeutral},
		{"at safe boundary", 0.30, 0.35, 0.28, domain.RiskNeutral},
		{"at risky boundary", 0.70, 0.35, 0.28, domain.RiskNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &domain.OptionMetrics{ProbITM: tt.probITM}
			assert.Equal(t, tt.want, ClassifyRisk(m, tt.iv, tt.histVol, th))
		})
	}
}
