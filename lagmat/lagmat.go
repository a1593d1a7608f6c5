// Package lagmat builds the lag matrix at the heart of the ADF regression:
// a series concatenated with its own lags, the way statsmodels' lagmat
// constructs it.
package lagmat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
)

const op = "lagmat.Build"

// FromSeries widens a 1-D series into an n×1 column and builds its lag
// matrix; see Build for the trim/original semantics.
func FromSeries(x []float64, maxlag int, trim, original string) (*mat.Dense, error) {
	n := len(x)
	col := mat.NewDense(n, 1, append([]float64(nil), x...))
	return Build(col, maxlag, trim, original)
}

// Build constructs a matrix whose columns are, left to right, lag 0 (the
// original columns of x) followed by lag 1..maxlag if original == "in", or
// only lags 1..maxlag if original == "ex".
//
// trim selects which rows of the full (n+maxlag)-row scratch matrix survive:
//
//	"none"     rows [0, n+maxlag)
//	"forward"  rows [0, n)
//	"backward" rows [maxlag, n+maxlag)
//	"both"     rows [maxlag, n)
func Build(x mat.Matrix, maxlag int, trim, original string) (*mat.Dense, error) {
	n, v := x.Dims()

	if maxlag < 0 {
		return nil, adferrors.New(adferrors.InvalidArgument, op, "maxlag", maxlag)
	}
	if maxlag >= n {
		return nil, adferrors.New(adferrors.InvalidArgument, op, "maxlag", maxlag)
	}
	switch trim {
	case "forward", "backward", "both", "none":
	default:
		return nil, adferrors.New(adferrors.InvalidArgument, op, "trim", trim)
	}
	switch original {
	case "in", "ex":
	default:
		return nil, adferrors.New(adferrors.InvalidArgument, op, "original", original)
	}

	dropCols := 0
	if original == "ex" {
		dropCols = v
	}

	scratchRows := n + maxlag
	scratchCols := v * (maxlag + 1)
	lm := mat.NewDense(scratchRows, scratchCols, nil)

	for k := 0; k <= maxlag; k++ {
		r0 := maxlag - k
		c0 := (maxlag - k) * v
		block := lm.Slice(r0, r0+n, c0, c0+v)
		block.(*mat.Dense).Copy(x)
	}

	var startObs, stopObs int
	switch trim {
	case "none":
		startObs, stopObs = 0, scratchRows
	case "forward":
		startObs, stopObs = 0, n
	case "backward":
		startObs, stopObs = maxlag, scratchRows
	case "both":
		startObs, stopObs = maxlag, n
	}

	view := lm.Slice(startObs, stopObs, dropCols, scratchCols)
	return mat.DenseCopyOf(view), nil
}
