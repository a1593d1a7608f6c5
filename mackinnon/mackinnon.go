// Package mackinnon translates an ADF test statistic into a p-value and
// finite-sample critical values using the MacKinnon (1994/2010) coefficient
// tables in tables.go.
package mackinnon

import (
	"math"
	"strings"

	"github.com/halvorsen-quant/adfstat/adferrors"
)

var posInf = math.Inf(1)

type regressionTables struct {
	tauMax, tauMin, tauStar []float64
	smallP, largeP          [][]float64
	crit2010                [][][]float64
}

var tablesByRegression = map[string]regressionTables{
	"nc":  {tauMaxNC, tauMinNC, tauStarNC, tauNCSmallP, tauNCLargeP, tauNC2010},
	"c":   {tauMaxC, tauMinC, tauStarC, tauCSmallP, tauCLargeP, tauC2010},
	"ct":  {tauMaxCT, tauMinCT, tauStarCT, tauCTSmallP, tauCTLargeP, tauCT2010},
	"ctt": {tauMaxCTT, tauMinCTT, tauStarCTT, tauCTTSmallP, tauCTTLargeP, tauCTT2010},
}

func lookup(op, regression string) (regressionTables, error) {
	t, ok := tablesByRegression[strings.ToLower(regression)]
	if !ok {
		return regressionTables{}, adferrors.New(adferrors.InvalidArgument, op, "regression", regression)
	}
	return t, nil
}

// PValue maps an ADF test statistic to a p-value for the given regression
// kind ("n"/"nc", "c", "ct", "ctt") and co-integration rank N.
//
// Values beyond the tabulated range clamp to 1.0 (above tau_max) or
// 0.0 (below tau_min). Otherwise the small-p or large-p polynomial row is
// selected by comparing teststat to tau_star, evaluated via Horner's method
// on the reversed (highest-power-first) coefficients, and mapped through
// the standard normal CDF.
func PValue(teststat float64, regression string, n int) (float64, error) {
	const op = "mackinnon.PValue"
	regression = normalizeRegression(regression)
	t, err := lookup(op, regression)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > len(t.tauMax) {
		return 0, adferrors.New(adferrors.InvalidArgument, op, "N", n)
	}
	idx := n - 1

	if teststat > t.tauMax[idx] {
		return 1.0, nil
	}
	if teststat < t.tauMin[idx] {
		return 0.0, nil
	}

	var row []float64
	if teststat <= t.tauStar[idx] {
		row = t.smallP[idx]
	} else {
		row = t.largeP[idx]
	}

	coeffs := reversed(row)
	return normCDF(polyvalScalar(coeffs, teststat)), nil
}

// CritValue evaluates the MacKinnon (2010) finite-sample critical values for
// co-integration rank N and regression kind, at the given sample size.
// nobs == math.Inf(1) returns the asymptotic column; otherwise each of the
// three significance levels (1%, 5%, 10%) is a cubic polynomial in 1/nobs.
func CritValue(n int, regression string, nobs float64) ([3]float64, error) {
	const op = "mackinnon.CritValue"
	regression = normalizeRegression(regression)
	t, err := lookup(op, regression)
	if err != nil {
		return [3]float64{}, err
	}
	if n < 1 || n > 12 {
		return [3]float64{}, adferrors.New(adferrors.InvalidArgument, op, "N", n)
	}
	if n > len(t.crit2010) {
		return [3]float64{}, adferrors.New(adferrors.InvalidArgument, op, "N", n)
	}
	row := t.crit2010[n-1]

	var out [3]float64
	if math.IsInf(nobs, 1) {
		for i, level := range row {
			out[i] = level[0]
		}
		return out, nil
	}

	x := 1.0 / nobs
	for i, level := range row {
		out[i] = polyvalScalar(reversed(level), x)
	}
	return out, nil
}

// normalizeRegression accepts "n" (the adfuller deterministic-term enum)
// as a synonym for "nc" (the MacKinnon table key), matching statsmodels'
// own mapping.
func normalizeRegression(regression string) string {
	r := strings.ToLower(regression)
	if r == "n" {
		return "nc"
	}
	return r
}

// polyvalScalar evaluates a polynomial at x via Horner's method, given
// coefficients from highest power to lowest (numpy.polyval convention).
func polyvalScalar(coeffs []float64, x float64) float64 {
	result := 0.0
	for _, c := range coeffs {
		result = result*x + c
	}
	return result
}

// normCDF is the standard normal CDF, Φ(z) = ½(1 + erf(z/√2)).
func normCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}

func reversed(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		out[len(row)-1-i] = v
	}
	return out
}
