package hurst

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/halvorsen-quant/adfstat/adferrors"
)

func whiteNoise(n int, seed uint64) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// A random walk diffuses: lagged differences spread as sqrt(lag), so the
// exponent should land near 0.5.
func TestExponent_RandomWalkNearHalf(t *testing.T) {
	noise := whiteNoise(2000, 42)
	walk := make([]float64, len(noise))
	running := 0.0
	for i, v := range noise {
		running += v
		walk[i] = running
	}

	h, err := Exponent(walk)
	require.NoError(t, err)
	require.InDelta(t, 0.5, h, 0.15)
}

// White noise has no memory at all: lagged differences have the same spread
// at every lag, so the exponent collapses toward zero.
func TestExponent_WhiteNoiseNearZero(t *testing.T) {
	h, err := Exponent(whiteNoise(2000, 7))
	require.NoError(t, err)
	require.Less(t, h, 0.2)
}

func TestExponent_RejectsShortSeries(t *testing.T) {
	_, err := Exponent(make([]float64, 50))
	require.Error(t, err)
	require.True(t, adferrors.Is(err, adferrors.InvalidArgument))
}

func TestExponent_RejectsConstantSeries(t *testing.T) {
	_, err := Exponent(make([]float64, 200))
	require.Error(t, err)
	require.True(t, adferrors.Is(err, adferrors.DegenerateInput))
}
