package rolling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMean_TracksTheWindowAverage(t *testing.T) {
	m, err := NewMean([]float64{1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 2.0, m.Current(), 1e-9)

	got := m.Update(6) // window becomes [2,3,6]
	require.InDelta(t, 11.0/3.0, got, 1e-9)
	require.InDelta(t, got, m.Current(), 1e-9)
}

func TestNewMean_RejectsEmptyWindow(t *testing.T) {
	_, err := NewMean(nil)
	require.Error(t, err)
}

func TestAROneHalfLife_RecoversKnownDecayRate(t *testing.T) {
	phi := 0.8
	n := 500
	x := make([]float64, n)
	x[0] = 1.0
	for i := 1; i < n; i++ {
		x[i] = phi * x[i-1]
	}

	h, err := AROneHalfLife(x)
	require.NoError(t, err)

	want := -(math.Log(2) / math.Log(phi))
	require.InDelta(t, want, h, 0.5)
}

func TestNewHalfLife_UpdatesAsWindowSlides(t *testing.T) {
	phi := 0.7
	n := 100
	x := make([]float64, n)
	x[0] = 1.0
	for i := 1; i < n; i++ {
		x[i] = phi * x[i-1]
	}

	hl, err := NewHalfLife(x[:50])
	require.NoError(t, err)
	require.Greater(t, hl.Current(), 0.0)

	got, err := hl.Update(x[50])
	require.NoError(t, err)
	require.Equal(t, got, hl.Current())
}
