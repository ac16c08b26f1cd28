package calculation

import (
	"fmt"
	"math"
)

// tradingDaysPerYear annualizes daily return statistics.
const tradingDaysPerYear = 252

// HistoricalVolatility estimates annualized volatility from a daily close
// series: sample standard deviation of log returns scaled by sqrt(252).
// At least three closes are required for a meaningful sample.
func HistoricalVolatility(closes []float64) (float64, error) {
	if len(closes) < 3 {
		return 0, fmt.Errorf("%w: need at least 3 closes for a volatility estimate, got %d",
			ErrInvalidInput, len(closes))
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] <= 0 || closes[i] <= 0 {
			return 0, fmt.Errorf("%w: closes must be positive (index %d)", ErrInvalidInput, i)
		}
		returns = append(returns, math.Log(closes[i]/closes[i-1]))
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		diff := r - mean
		variance += diff * diff
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * math.Sqrt(tradingDaysPerYear), nil
}
