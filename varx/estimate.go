package varx

import (
	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/ols"
)

const opEstimate = "varx.Estimate"

// Estimate fits a VAR(p) by OLS. Because every equation shares the same
// design matrix (the deterministic terms and lagged values of every
// variable), Estimate builds that matrix once and fits each of the K
// equations against it through a separate ols.Fit call, rather than solving
// one combined multi-response regression — the per-equation coefficients,
// fitted values and AIC/BIC this way come straight from the shared OLS
// solver instead of a second, VAR-specific implementation of the normal
// equations.
func Estimate(ts *TimeSeries, spec ModelSpec, opts EstimationOptions) (*ReducedFormVAR, error) {
	if ts == nil || ts.Y == nil {
		return nil, adferrors.New(adferrors.InvalidArgument, opEstimate, "ts", nil)
	}
	if spec.HasExogenous {
		return nil, adferrors.New(adferrors.InvalidArgument, opEstimate, "HasExogenous", true)
	}

	T, K := ts.Y.Dims()
	p := spec.Lags
	if p <= 0 {
		return nil, adferrors.New(adferrors.InvalidArgument, opEstimate, "Lags", p)
	}
	if T <= p {
		return nil, adferrors.New(adferrors.DegenerateInput, opEstimate, "T", T)
	}

	hasConst := spec.Deterministic == DetConst || spec.Deterministic == DetConstTrend
	hasTrend := spec.Deterministic == DetTrend || spec.Deterministic == DetConstTrend
	detCols := 0
	if hasConst {
		detCols++
	}
	if hasTrend {
		detCols++
	}

	Treg := T - p
	lagCols := p * K
	m := detCols + lagCols

	X := mat.NewDense(Treg, m, nil)
	for t := 0; t < Treg; t++ {
		col := 0
		timeIndex := float64(t + p + 1)
		if hasConst {
			X.Set(t, col, 1.0)
			col++
		}
		if hasTrend {
			X.Set(t, col, timeIndex)
			col++
		}
		for j := 1; j <= p; j++ {
			srcRow := t + p - j
			for k := 0; k < K; k++ {
				X.Set(t, col, ts.Y.At(srcRow, k))
				col++
			}
		}
	}

	fits := make([]ols.Result, K)
	Yhat := mat.NewDense(Treg, K, nil)
	for eq := 0; eq < K; eq++ {
		y := make([]float64, Treg)
		for t := 0; t < Treg; t++ {
			y[t] = ts.Y.At(t+p, eq)
		}
		fit, err := ols.Fit(X, y)
		if err != nil {
			return nil, err
		}
		fits[eq] = fit
		for t := 0; t < Treg; t++ {
			Yhat.Set(t, eq, fit.FittedValues[t])
		}
	}

	var C *mat.Dense
	if detCols > 0 {
		C = mat.NewDense(K, detCols, nil)
		for eq := 0; eq < K; eq++ {
			for d := 0; d < detCols; d++ {
				C.Set(eq, d, fits[eq].Params[d])
			}
		}
	}

	A := make([]*mat.Dense, p)
	for j := 0; j < p; j++ {
		Aj := mat.NewDense(K, K, nil)
		rowOffset := detCols + j*K
		for eq := 0; eq < K; eq++ {
			for colVar := 0; colVar < K; colVar++ {
				Aj.Set(eq, colVar, fits[eq].Params[rowOffset+colVar])
			}
		}
		A[j] = Aj
	}

	var U mat.Dense
	U.Sub(ts.Y.Slice(p, T, 0, K), Yhat)
	var utu mat.Dense
	utu.Mul(U.T(), &U)

	df := float64(Treg - m)
	if df <= 0 {
		df = float64(Treg)
	}
	sigmaData := make([]float64, K*K)
	for i := 0; i < K; i++ {
		for j := 0; j < K; j++ {
			sigmaData[i*K+j] = utu.At(i, j) / df
		}
	}

	return &ReducedFormVAR{
		Model:        spec,
		A:            A,
		C:            C,
		SigmaU:       mat.NewSymDense(K, sigmaData),
		EquationFits: fits,
	}, nil
}
