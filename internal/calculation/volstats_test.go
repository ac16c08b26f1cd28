package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoricalVolatility_ConstantPriceIsZero(t *testing.T) {
	vol, err := HistoricalVolatility([]float64{100, 100, 100, 100})
	require.NoError(t, err)
	assert.Equal(t, 0.0, vol)
}

func TestHistoricalVolatility_KnownSeries(t *testing.T) {
	// Alternating +1%/-1% daily moves: log returns alternate between
	// ln(1.01) and ln(1/1.01), mean ~0, sample stddev ~ln(1.01).
	closes := []float64{100, 101, 100, 101, 100, 101, 100}
	vol, err := HistoricalVolatility(closes)
	require.NoError(t, err)

	r := math.Log(1.01)
	// 6 returns, mean ~= 0, each |deviation| ~= r, variance = 6r^2/5.
	want := math.Sqrt(6.0/5.0) * r * math.Sqrt(252)
	assert.InDelta(t, want, vol, 1e-9)
}

func TestHistoricalVolatility_ScalesWithMoveSize(t *testing.T) {
	small, err := HistoricalVolatility([]float64{100, 101, 100, 101, 100})
	require.NoError(t, err)
	large, err := HistoricalVolatility([]float64{100, 105, 100, 105, 100})
	require.NoError(t, err)
	assert.Greater(t, large, small)
}

func TestHistoricalVolatility_InputErrors(t *testing.T) {
	_, err := HistoricalVolatility([]float64{100, 101})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = HistoricalVolatility([]float64{100, 0, 101})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = HistoricalVolatility([]float64{100, -5, 101})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
