// Package trend adds deterministic regressor columns (constant, linear,
// quadratic time trend) to a design matrix, mirroring statsmodels'
// add_trend.
package trend

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
)

const op = "trend.Add"

// Add prepends or appends deterministic trend columns to X.
//
//	"c"   constant only                     -> +1 column
//	"t"   linear trend only                  -> +1 column
//	"ct"  constant + linear trend            -> +2 columns
//	"ctt" constant + linear + quadratic trend -> +3 columns
//
// trend is matched case-insensitively. Columns are placed before X when
// prepend is true, after X otherwise.
func Add(X mat.Matrix, trendKind string, prepend bool) (*mat.Dense, error) {
	kind := strings.ToLower(trendKind)
	n, p := X.Dims()

	var width int
	switch kind {
	case "c", "t":
		width = 1
	case "ct":
		width = 2
	case "ctt":
		width = 3
	default:
		return nil, adferrors.New(adferrors.InvalidArgument, op, "trend", trendKind)
	}

	trendCols := mat.NewDense(n, width, nil)
	for i := 0; i < n; i++ {
		tau := float64(i + 1)
		switch kind {
		case "c":
			trendCols.Set(i, 0, 1)
		case "t":
			trendCols.Set(i, 0, tau)
		case "ct":
			trendCols.Set(i, 0, 1)
			trendCols.Set(i, 1, tau)
		case "ctt":
			trendCols.Set(i, 0, 1)
			trendCols.Set(i, 1, tau)
			trendCols.Set(i, 2, tau*tau)
		}
	}

	out := mat.NewDense(n, p+width, nil)
	if prepend {
		out.Slice(0, n, 0, width).(*mat.Dense).Copy(trendCols)
		out.Slice(0, n, width, width+p).(*mat.Dense).Copy(X)
	} else {
		out.Slice(0, n, 0, p).(*mat.Dense).Copy(X)
		out.Slice(0, n, p, p+width).(*mat.Dense).Copy(trendCols)
	}
	return out, nil
}

// FromSeries widens a 1-D series into an n×1 column before calling Add.
func FromSeries(x []float64, trendKind string, prepend bool) (*mat.Dense, error) {
	n := len(x)
	col := mat.NewDense(n, 1, append([]float64(nil), x...))
	return Add(col, trendKind, prepend)
}

// Width returns the number of columns Add appends for the given trend kind,
// without building a matrix, for callers that need to size downstream
// structures before calling Add.
func Width(trendKind string) (int, error) {
	switch strings.ToLower(trendKind) {
	case "c", "t":
		return 1, nil
	case "ct":
		return 2, nil
	case "ctt":
		return 3, nil
	default:
		return 0, adferrors.New(adferrors.InvalidArgument, op, "trend", trendKind)
	}
}
