// Package autolag picks a lag order by repeated OLS fits: fit every
// candidate lag length once, then select per AIC, BIC, or a backward
// t-stat walk.
package autolag

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/modelkind"
)

const op = "autolag.Select"

// tStatCritical is the 5% one-sided normal critical value used by the
// "t-stat" method.
const tStatCritical = 1.6448536269514722

// Result is the outcome of automatic lag selection.
type Result struct {
	ICBest  float64
	BestLag int
}

// Select fits the model named by kind on X[:, 0:lag] against y for every
// lag in [startLag, startLag+maxLag], then reports the lag chosen by method
// ("aic", "bic", or "t-stat", case-insensitive).
//
// X must have at least startLag+maxLag columns. Callers must treat the
// X[:, 0:lag] slices passed to each fit as non-owning views: Select slices
// the same backing matrix rather than copying it ahead of time, keeping
// each fit at O(n·k²).
func Select(kind modelkind.Kind, X mat.Matrix, y []float64, startLag, maxLag int, method string) (Result, error) {
	m := strings.ToLower(method)
	if m != "aic" && m != "bic" && m != "t-stat" {
		return Result{}, adferrors.New(adferrors.InvalidArgument, op, "method", method)
	}

	n, cols := X.Dims()
	if startLag < 0 || maxLag < 0 || startLag+maxLag > cols {
		return Result{}, adferrors.New(adferrors.InvalidArgument, op, "startLag+maxLag", startLag+maxLag)
	}

	Xd, ok := X.(*mat.Dense)
	if !ok {
		Xd = mat.DenseCopyOf(X)
	}

	type fitAt struct {
		lag int
		aic float64
		bic float64
		t   float64
	}
	fits := make([]fitAt, 0, maxLag+1)

	for lag := startLag; lag <= startLag+maxLag; lag++ {
		view := Xd.Slice(0, n, 0, lag)
		res, err := modelkind.Fit(kind, view, y)
		if err != nil {
			return Result{}, err
		}
		lastT := res.TValues[len(res.TValues)-1]
		fits = append(fits, fitAt{lag: res.Lag, aic: res.AIC, bic: res.BIC, t: lastT})
	}

	switch m {
	case "aic":
		best := fits[0]
		for _, f := range fits[1:] {
			if f.aic < best.aic {
				best = f
			}
		}
		return Result{ICBest: best.aic, BestLag: best.lag}, nil
	case "bic":
		best := fits[0]
		for _, f := range fits[1:] {
			if f.bic < best.bic {
				best = f
			}
		}
		return Result{ICBest: best.bic, BestLag: best.lag}, nil
	default: // "t-stat"
		icbest := 0.0
		bestLag := startLag
		for i := len(fits) - 1; i >= 0; i-- {
			icbest = absFloat(fits[i].t)
			bestLag = fits[i].lag
			if icbest >= tStatCritical {
				break
			}
		}
		return Result{ICBest: icbest, BestLag: bestLag}, nil
	}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
