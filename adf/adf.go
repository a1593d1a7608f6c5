// Package adf implements the Augmented Dickey-Fuller unit-root test,
// orchestrating lag construction, trend augmentation, automatic lag
// selection, a final OLS regression, and a MacKinnon table lookup.
package adf

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/autolag"
	"github.com/halvorsen-quant/adfstat/diff"
	"github.com/halvorsen-quant/adfstat/lagmat"
	"github.com/halvorsen-quant/adfstat/mackinnon"
	"github.com/halvorsen-quant/adfstat/modelkind"
	"github.com/halvorsen-quant/adfstat/ols"
	"github.com/halvorsen-quant/adfstat/trend"
)

const op = "adf.Run"

// Result is the outcome of an ADF test.
type Result struct {
	ADFStat    float64
	PValue     float64
	UsedLag    int
	NObs       int
	CritValues map[string]float64 // keys "1%", "5%", "10%"
	ICBest     float64
	Warnings   []string         // non-fatal diagnostics, e.g. maxlag exceeding the Greene/Schwert bound
	Regression *ols.Result      // populated only when Options.RegResults is set
	LagSearch  []autolag.Result // populated only when Options.Store is set (one entry, the winning autolag call)
}

// Options toggles purely structural, non-numeric additions to Result. They
// never change ADFStat, PValue, UsedLag, NObs, CritValues, or ICBest.
type Options struct {
	Store      bool // attach the autolag search trace to Result.LagSearch
	RegResults bool // attach the final OLS fit to Result.Regression
}

// Run calls RunWithOptions with the default Options{} (neither Store nor
// RegResults set).
func Run(x []float64, maxlag int, regression, autolagMethod string) (Result, error) {
	return RunWithOptions(x, maxlag, regression, autolagMethod, Options{})
}

// RunWithOptions runs the Augmented Dickey-Fuller test on x.
//
// maxlag == 0 means "auto": the Greene/Schwert bound
// ceil(12*(n/100)^0.25), clipped to n/2 - ntrend - 1.
//
// regression selects the deterministic terms: "n" (none), "c" (constant),
// "ct" (constant + trend), "ctt" (constant + linear + quadratic trend).
//
// autolagMethod selects "AIC", "BIC", "t-stat" (case-insensitive), or ""
// to use maxlag directly without automatic selection.
func RunWithOptions(x []float64, maxlag int, regression, autolagMethod string, opts Options) (Result, error) {
	n := len(x)
	if n == 0 {
		return Result{}, adferrors.New(adferrors.DegenerateInput, op, "x", "empty")
	}
	if isConstant(x) {
		return Result{}, adferrors.New(adferrors.DegenerateInput, op, "x", "constant")
	}

	regressionKind := strings.ToLower(regression)
	ntrend, err := ntrendFor(regressionKind)
	if err != nil {
		return Result{}, err
	}

	var warnings []string
	if maxlag == 0 {
		suggested := int(math.Ceil(12.0 * math.Pow(float64(n)/100.0, 0.25)))
		maxlag = suggested
		clip := n/2 - ntrend - 1
		if maxlag > clip {
			maxlag = clip
		}
		if maxlag < 0 {
			return Result{}, adferrors.New(adferrors.DegenerateInput, op, "n", n)
		}
	} else {
		suggested := int(math.Ceil(12.0 * math.Pow(float64(n)/100.0, 0.25)))
		if maxlag > suggested {
			warnings = append(warnings, fmt.Sprintf(
				"maxlag %d exceeds the Greene/Schwert suggested bound %d for n=%d", maxlag, suggested, n))
		}
		clip := n/2 - ntrend - 1
		if maxlag > clip {
			return Result{}, adferrors.New(adferrors.InvalidArgument, op, "maxlag", maxlag)
		}
	}

	xdiff := diff.Series(x)
	if maxlag >= len(xdiff) {
		return Result{}, adferrors.New(adferrors.InvalidArgument, op, "maxlag", maxlag)
	}

	xdall, nobs, xdshort, err := buildRegressands(x, xdiff, maxlag)
	if err != nil {
		return Result{}, err
	}

	autoMethod := strings.ToLower(autolagMethod)
	usedLag := maxlag
	icbest := -1.0
	var trace []autolag.Result

	if autoMethod == "aic" || autoMethod == "bic" || autoMethod == "t-stat" {
		var fullRHS *mat.Dense
		if regressionKind != "n" {
			fullRHS, err = trend.Add(xdall, regressionKind, true)
			if err != nil {
				return Result{}, err
			}
		} else {
			fullRHS = xdall
		}
		_, fullCols := fullRHS.Dims()
		_, xdallCols := xdall.Dims()
		startLag := fullCols - xdallCols + 1

		alResult, err := autolag.Select(modelkind.OLS, fullRHS, xdshort, startLag, maxlag, autoMethod)
		if err != nil {
			return Result{}, err
		}
		if opts.Store {
			trace = append(trace, alResult)
		}
		icbest = alResult.ICBest
		bestLag := alResult.BestLag - startLag

		xdall, nobs, xdshort, err = buildRegressands(x, xdiff, bestLag)
		if err != nil {
			return Result{}, err
		}
		usedLag = bestLag
	}

	var rhs *mat.Dense
	levelAndLags := xdall.Slice(0, nobs, 0, usedLag+1)
	if regressionKind != "n" {
		rhs, err = trend.Add(levelAndLags, regressionKind, false)
		if err != nil {
			return Result{}, err
		}
	} else {
		rhs = mat.DenseCopyOf(levelAndLags)
	}

	finalFit, err := modelkind.Fit(modelkind.OLS, rhs, xdshort)
	if err != nil {
		return Result{}, err
	}

	adfStat := finalFit.TValues[0]
	if math.IsNaN(adfStat) || math.IsInf(adfStat, 0) {
		return Result{}, adferrors.New(adferrors.NumericalFailure, op, "adfstat", adfStat)
	}

	pvalue, err := mackinnon.PValue(adfStat, regressionKind, 1)
	if err != nil {
		return Result{}, err
	}
	crit, err := mackinnon.CritValue(1, regressionKind, float64(nobs))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ADFStat: adfStat,
		PValue:  pvalue,
		UsedLag: usedLag,
		NObs:    nobs,
		CritValues: map[string]float64{
			"1%":  crit[0],
			"5%":  crit[1],
			"10%": crit[2],
		},
		ICBest:   icbest,
		Warnings: warnings,
	}
	if opts.Store {
		res.LagSearch = trace
	}
	if opts.RegResults {
		f := finalFit
		res.Regression = &f
	}
	return res, nil
}

// buildRegressands builds the lag matrix of xdiff for a given lag order,
// overwrites column 0 with the lagged level series, and takes the
// matching tail of xdiff.
func buildRegressands(x, xdiff []float64, lag int) (xdall *mat.Dense, nobs int, xdshort []float64, err error) {
	xdall, err = lagmat.FromSeries(xdiff, lag, "both", "in")
	if err != nil {
		return nil, 0, nil, err
	}
	nobs, _ = xdall.Dims()

	levelLag := x[len(x)-nobs-1 : len(x)-1]
	xdall.Slice(0, nobs, 0, 1).(*mat.Dense).Copy(mat.NewDense(nobs, 1, append([]float64(nil), levelLag...)))

	xdshort = append([]float64(nil), xdiff[len(xdiff)-nobs:]...)
	return xdall, nobs, xdshort, nil
}

func ntrendFor(regression string) (int, error) {
	switch regression {
	case "n":
		return 0, nil
	case "c":
		return 1, nil
	case "ct":
		return 2, nil
	case "ctt":
		return 3, nil
	default:
		return 0, adferrors.New(adferrors.InvalidArgument, op, "regression", regression)
	}
}

func isConstant(x []float64) bool {
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo == hi
}
