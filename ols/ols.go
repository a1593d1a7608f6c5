// Package ols implements the closed-form ordinary least squares solver that
// the ADF driver and its regression-based helpers are built on: lag
// selection re-fits it repeatedly, and the final ADF regression is itself
// one call to Fit.
package ols

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/internal/linalg"
)

// Result is the value record produced by a single OLS fit.
type Result struct {
	Params       []float64 // coefficients, length k
	FittedValues []float64 // length n
	Residuals    []float64 // length n; Residuals = y - FittedValues
	TValues      []float64 // length k
	AIC          float64
	BIC          float64
	Lag          int // k at construction time, the column count this fit used
}

// Fit regresses y (length n) on X (n×k) via the normal equations, switching
// to the Moore-Penrose pseudoinverse when X'X is near-singular.
//
// Fit fails with adferrors.InvalidArgument when n <= k or k == 0: zero
// or negative degrees of freedom, or an empty design matrix.
func Fit(X mat.Matrix, y []float64) (Result, error) {
	n, k := X.Dims()
	if k == 0 {
		return Result{}, adferrors.New(adferrors.InvalidArgument, "ols.Fit", "k", k)
	}
	if n <= k {
		return Result{}, adferrors.New(adferrors.InvalidArgument, "ols.Fit", "n", n)
	}
	if len(y) != n {
		return Result{}, adferrors.New(adferrors.InvalidArgument, "ols.Fit", "len(y)", len(y))
	}

	Xd := asDense(X)
	yVec := mat.NewVecDense(n, append([]float64(nil), y...))

	// A = X'X
	var A mat.Dense
	A.Mul(Xd.T(), Xd)

	Ainv, _, err := linalg.SymmetricInverse(&A)
	if err != nil {
		return Result{}, adferrors.Wrap(adferrors.DegenerateInput, "ols.Fit", "X", "X'X", err)
	}

	var Xty mat.VecDense
	Xty.MulVec(Xd.T(), yVec)

	var params mat.VecDense
	params.MulVec(Ainv, &Xty)

	var fitted mat.VecDense
	fitted.MulVec(Xd, &params)

	var resid mat.VecDense
	resid.SubVec(yVec, &fitted)

	rss := mat.Dot(&resid, &resid)
	nf, kf := float64(n), float64(k)
	sigma2 := rss / (nf - kf)

	var varBeta mat.Dense
	varBeta.Scale(sigma2, Ainv)

	tValues := make([]float64, k)
	for i := 0; i < k; i++ {
		v := varBeta.At(i, i)
		if v <= 0 {
			tValues[i] = math.NaN()
			continue
		}
		tValues[i] = params.AtVec(i) / math.Sqrt(v)
	}

	logMeanRSS := math.Log(rss / nf)
	res := Result{
		Params:       vecSlice(&params),
		FittedValues: vecSlice(&fitted),
		Residuals:    vecSlice(&resid),
		TValues:      tValues,
		AIC:          nf*logMeanRSS + 2*kf,
		BIC:          nf*logMeanRSS + kf*math.Log(nf),
		Lag:          k,
	}
	return res, nil
}

func asDense(X mat.Matrix) *mat.Dense {
	if d, ok := X.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(X)
}

func vecSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
