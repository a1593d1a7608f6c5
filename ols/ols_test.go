package ols

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
)

func TestFit_RecoversKnownCoefficients(t *testing.T) {
	// y = 2 + 3x, no noise.
	xs := []float64{1, 2, 3, 4, 5, 6}
	X := mat.NewDense(6, 2, nil)
	y := make([]float64, 6)
	for i, xv := range xs {
		X.Set(i, 0, 1)
		X.Set(i, 1, xv)
		y[i] = 2 + 3*xv
	}

	res, err := Fit(X, y)
	require.NoError(t, err)
	require.InDelta(t, 2.0, res.Params[0], 1e-8)
	require.InDelta(t, 3.0, res.Params[1], 1e-8)
	require.Equal(t, 2, res.Lag)
}

func TestFit_ResidualsAreOrthogonalToRegressors(t *testing.T) {
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		1, 2,
		1, 3,
		1, 5,
		1, 8,
	})
	y := []float64{2.1, 3.9, 6.2, 9.8, 16.1}

	res, err := Fit(X, y)
	require.NoError(t, err)

	n, k := X.Dims()
	for j := 0; j < k; j++ {
		dot := 0.0
		for i := 0; i < n; i++ {
			dot += X.At(i, j) * res.Residuals[i]
		}
		require.InDelta(t, 0.0, dot, 1e-6)
	}
}

func TestFit_FittedPlusResidualsEqualsY(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
		1, 3,
	})
	y := []float64{1, 2, 4, 7}

	res, err := Fit(X, y)
	require.NoError(t, err)
	for i := range y {
		require.InDelta(t, y[i], res.FittedValues[i]+res.Residuals[i], 1e-9)
	}
}

func TestFit_AICBICIdentity(t *testing.T) {
	X := mat.NewDense(10, 2, []float64{
		1, 0, 1, 1, 1, 2, 1, 3, 1, 4,
		1, 5, 1, 6, 1, 7, 1, 8, 1, 9,
	})
	y := []float64{1, 1.2, 1.9, 3.3, 3.9, 5.2, 6.1, 6.8, 8.2, 8.9}

	res, err := Fit(X, y)
	require.NoError(t, err)

	n, k := 10.0, 2.0
	require.InDelta(t, res.BIC-res.AIC, k*math.Log(n)-2*k, 1e-9)
}

func TestFit_RejectsNonPositiveDegreesOfFreedom(t *testing.T) {
	X := mat.NewDense(2, 2, []float64{1, 0, 1, 1})
	y := []float64{1, 2}

	_, err := Fit(X, y)
	require.Error(t, err)
	require.True(t, adferrors.Is(err, adferrors.InvalidArgument))
}

func TestFit_RejectsMismatchedYLength(t *testing.T) {
	X := mat.NewDense(5, 1, []float64{1, 1, 1, 1, 1})
	y := []float64{1, 2, 3}

	_, err := Fit(X, y)
	require.Error(t, err)
	require.True(t, adferrors.Is(err, adferrors.InvalidArgument))
}

func TestFit_SingularDesignFallsBackToPseudoinverse(t *testing.T) {
	// Two identical columns make X'X singular.
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
		5, 5,
	})
	y := []float64{1, 2, 3, 4, 5}

	res, err := Fit(X, y)
	require.NoError(t, err)
	require.Len(t, res.Params, 2)
	for _, p := range res.Params {
		require.False(t, math.IsNaN(p))
	}
}
