// Package varx implements reduced-form vector autoregression: estimation
// and pairwise Granger causality testing. Every equation is fit through the
// shared ols solver rather than deriving its own normal equations.
package varx

import (
	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/ols"
)

// TimeSeries is a panel of K variables observed at T time points.
type TimeSeries struct {
	Y        *mat.Dense // T x K
	Time     []float64  // length T; LoadCSVToTimeSeries fills it with 0..T-1
	VarNames []string   // length K
}

// Deterministic selects which deterministic terms a VAR equation carries.
type Deterministic int

const (
	DetNone Deterministic = iota
	DetConst
	DetTrend
	DetConstTrend
)

// ModelSpec describes the shape of a VAR to estimate.
type ModelSpec struct {
	Lags          int
	Deterministic Deterministic
	HasExogenous  bool // reserved; Estimate rejects true until exogenous regressors are supported
}

// ReducedFormVAR is an estimated VAR(p) in reduced form:
//
//	y_t = C + A_1 y_{t-1} + ... + A_p y_{t-p} + u_t
type ReducedFormVAR struct {
	Model ModelSpec

	A []*mat.Dense // p matrices, each K x K

	C *mat.Dense // K x detCols, nil when Deterministic == DetNone

	SigmaU *mat.SymDense // K x K residual covariance

	// EquationFits holds the per-equation OLS result backing A/C/SigmaU,
	// one per variable, column order [det terms..., lag1 vars..., lagp vars...].
	EquationFits []ols.Result
}

// EstimationOptions controls how Estimate fits the model.
type EstimationOptions struct {
	// Reserved for a future generalized-least-squares estimator.
	UseGeneralizedLeastSquares bool
}

// GrangerCausalityResult holds the result of one pairwise Granger test.
type GrangerCausalityResult struct {
	CauseVar    string
	EffectVar   string
	FStatistic  float64
	PValue      float64
	Lags        int
	Significant bool
}
