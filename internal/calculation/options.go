package calculation

import (
	"fmt"
	"math"

	"github.com/finsight/finance-engine/internal/domain"
)

const (
	// TradingHoursPerDay converts hourly theta to its daily impact.
	TradingHoursPerDay = 6.5

	// minTimeToExpiry floors T at one hour so 0-DTE contracts do not divide
	// by zero in the expected-move denominator.
	minTimeToExpiry = 1.0 / 365.0 / 24.0

	// maxImpliedVol rejects implausible volatility inputs (500%).
	maxImpliedVol = 5.0
)

// Abramowitz-Stegun rational approximation 7.1.26, max error ~1.5e-7.
func erf(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	t := 1.0 / (1.0 + p*x)
	y := 1.0 - (((((a5*t+a4)*t)+a3)*t+a2)*t+a1)*t*math.Exp(-x*x)
	return sign * y
}

// normCDF is the standard normal CDF built on the erf approximation.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + erf(x/math.Sqrt2))
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-x*x/2.0) / math.Sqrt(2.0*math.Pi)
}

func validateOption(p domain.OptionParameters) error {
	if p.Type != domain.Call && p.Type != domain.Put {
		return fmt.Errorf("%w: option type must be %q or %q, got %q",
			ErrInvalidInput, domain.Call, domain.Put, p.Type)
	}
	if p.UnderlyingPrice <= 0 {
		return fmt.Errorf("%w: underlying price must be positive, got %g", ErrInvalidInput, p.UnderlyingPrice)
	}
	if p.Strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidInput, p.Strike)
	}
	if p.ImpliedVol <= 0 || p.ImpliedVol > maxImpliedVol {
		return fmt.Errorf("%w: implied volatility must be in (0, %g], got %g",
			ErrParameterOutOfRange, maxImpliedVol, p.ImpliedVol)
	}
	if p.DaysToExpiry < 0 {
		return fmt.Errorf("%w: days to expiry cannot be negative, got %d", ErrParameterOutOfRange, p.DaysToExpiry)
	}
	if p.Premium < 0 {
		return fmt.Errorf("%w: premium cannot be negative, got %g", ErrInvalidInput, p.Premium)
	}
	return nil
}

// EvaluateOption derives the probability and Greek approximations for one
// contract. Every directional quantity branches on option type; calls and
// puts are never conflated.
func EvaluateOption(p domain.OptionParameters) (*domain.OptionMetrics, error) {
	if err := validateOption(p); err != nil {
		return nil, err
	}

	T := math.Max(float64(p.DaysToExpiry)/365.0, minTimeToExpiry)
	expectedMove := p.UnderlyingPrice * p.ImpliedVol * math.Sqrt(T)
	d := (p.UnderlyingPrice - p.Strike) / expectedMove

	m := &domain.OptionMetrics{
		ExpectedMove:     expectedMove,
		Gamma:            normPDF(d) / expectedMove,
		DailyThetaImpact: p.HourlyTheta * TradingHoursPerDay,
	}

	switch p.Type {
	case domain.Call:
		m.ProbITM = normCDF(d)
		m.Breakeven = p.Strike + p.Premium
		m.ProbOfProfit = normCDF((p.UnderlyingPrice - m.Breakeven) / expectedMove)
		m.Delta = m.ProbITM
		m.IntrinsicValue = math.Max(0, p.UnderlyingPrice-p.Strike)
		m.IsITM = p.UnderlyingPrice > p.Strike
	case domain.Put:
		m.ProbITM = 1.0 - normCDF(d)
		m.Breakeven = p.Strike - p.Premium
		m.ProbOfProfit = 1.0 - normCDF((p.UnderlyingPrice-m.Breakeven)/expectedMove)
		m.Delta = -m.ProbITM
		m.IntrinsicValue = math.Max(0, p.Strike-p.UnderlyingPrice)
		m.IsITM = p.Strike > p.UnderlyingPrice
	}
	m.TimeValue = p.Premium - m.IntrinsicValue

	return m, nil
}

// ClassifyRisk buckets a contract by assignment likelihood and volatility
// richness. Thresholds are caller configuration, not engine constants. A
// non-positive historicalVol skips the richness condition (no history to
// compare against).
func ClassifyRisk(m *domain.OptionMetrics, impliedVol, historicalVol float64, th domain.RiskThresholds) domain.RiskLevel {
	if m.ProbITM > th.RiskyMinProbITM {
		return domain.RiskRisky
	}
	if m.ProbITM < th.SafeMaxProbITM {
		if historicalVol <= 0 || impliedVol/historicalVol >= th.MinIVRichness {
			return domain.RiskSafe
		}
	}
	return domain.RiskNeutral
}
