// Package hurst estimates the Hurst exponent of a series via the classic
// variance-scaling method: the log of the square root of the
// lagged-difference standard deviation grows linearly in the log lag, and
// twice that slope is H.
//
//	H < 0.5  mean reverting
//	H == 0.5 geometric Brownian motion
//	H > 0.5  trending
package hurst

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/ols"
)

const op = "hurst.Exponent"

// minLag and maxLag bound the lags swept over.
const (
	minLag = 2
	maxLag = 99
)

// Exponent estimates the Hurst exponent of ts. It requires len(ts) > maxLag+1
// so that every lag in [minLag, maxLag] has at least two differenced points
// to compute a standard deviation from.
func Exponent(ts []float64) (float64, error) {
	n := len(ts)
	if n <= maxLag+1 {
		return 0, adferrors.New(adferrors.InvalidArgument, op, "len(ts)", n)
	}

	logLags := make([]float64, 0, maxLag-minLag+1)
	logTau := make([]float64, 0, maxLag-minLag+1)

	for lag := minLag; lag <= maxLag; lag++ {
		diffs := make([]float64, n-lag)
		for i := range diffs {
			diffs[i] = ts[i+lag] - ts[i]
		}
		sd := stat.StdDev(diffs, nil)
		if sd <= 0 {
			continue
		}
		logLags = append(logLags, math.Log(float64(lag)))
		logTau = append(logTau, math.Log(math.Sqrt(sd)))
	}
	if len(logLags) < 2 {
		return 0, adferrors.New(adferrors.DegenerateInput, op, "ts", "zero variance at every lag")
	}

	X := mat.NewDense(len(logLags), 2, nil)
	for i, lg := range logLags {
		X.Set(i, 0, 1)
		X.Set(i, 1, lg)
	}

	fit, err := ols.Fit(X, logTau)
	if err != nil {
		return 0, err
	}

	slope := fit.Params[1]
	h := math.Max(0.0, slope*2.0)
	return h, nil
}
