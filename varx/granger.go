package varx

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/ols"
)

const opGranger = "varx.GrangerCausality"

// GrangerCausality tests whether causeIdx Granger-causes effectIdx: it fits
// an unrestricted equation (all variables' lags) and a restricted one
// (causeIdx's lags dropped) through ols.Fit, then compares residual sums of
// squares via an F-test.
func (rf *ReducedFormVAR) GrangerCausality(ts *TimeSeries, causeIdx, effectIdx int) (*GrangerCausalityResult, error) {
	if ts == nil || ts.Y == nil {
		return nil, adferrors.New(adferrors.InvalidArgument, opGranger, "ts", nil)
	}

	T, K := ts.Y.Dims()
	p := rf.Model.Lags

	if causeIdx < 0 || causeIdx >= K {
		return nil, adferrors.New(adferrors.InvalidArgument, opGranger, "causeIdx", causeIdx)
	}
	if effectIdx < 0 || effectIdx >= K {
		return nil, adferrors.New(adferrors.InvalidArgument, opGranger, "effectIdx", effectIdx)
	}
	if causeIdx == effectIdx {
		return nil, adferrors.New(adferrors.InvalidArgument, opGranger, "causeIdx", causeIdx)
	}

	Treg := T - p
	y := make([]float64, Treg)
	for t := 0; t < Treg; t++ {
		y[t] = ts.Y.At(t+p, effectIdx)
	}

	hasConst := rf.Model.Deterministic == DetConst || rf.Model.Deterministic == DetConstTrend
	hasTrend := rf.Model.Deterministic == DetTrend || rf.Model.Deterministic == DetConstTrend
	detCols := 0
	if hasConst {
		detCols++
	}
	if hasTrend {
		detCols++
	}

	XUnrestricted := buildLagDesign(ts, p, Treg, detCols, hasConst, hasTrend, -1)
	unrestricted, err := ols.Fit(XUnrestricted, y)
	if err != nil {
		return nil, err
	}
	rssUnrestricted := sumSquares(unrestricted.Residuals)

	XRestricted := buildLagDesign(ts, p, Treg, detCols, hasConst, hasTrend, causeIdx)
	restricted, err := ols.Fit(XRestricted, y)
	if err != nil {
		return nil, err
	}
	rssRestricted := sumSquares(restricted.Residuals)

	q := float64(p)
	_, mUnrestricted := XUnrestricted.Dims()
	dof := float64(Treg) - float64(mUnrestricted)
	if dof <= 0 {
		return nil, adferrors.New(adferrors.DegenerateInput, opGranger, "dof", dof)
	}

	fStatistic := ((rssRestricted - rssUnrestricted) / q) / (rssUnrestricted / dof)
	fDist := distuv.F{D1: q, D2: dof}
	pValue := 1.0 - fDist.CDF(fStatistic)

	if math.IsNaN(fStatistic) || math.IsInf(fStatistic, 0) {
		fStatistic = 0
		pValue = 1.0
	}
	pValue = math.Max(0, math.Min(1, pValue))

	return &GrangerCausalityResult{
		CauseVar:    ts.VarNames[causeIdx],
		EffectVar:   ts.VarNames[effectIdx],
		FStatistic:  fStatistic,
		PValue:      pValue,
		Lags:        p,
		Significant: pValue < 0.05,
	}, nil
}

// GrangerCausalityMatrix runs GrangerCausality for every ordered pair of
// distinct variables.
func (rf *ReducedFormVAR) GrangerCausalityMatrix(ts *TimeSeries) ([][]*GrangerCausalityResult, error) {
	if ts == nil || ts.Y == nil {
		return nil, adferrors.New(adferrors.InvalidArgument, opGranger, "ts", nil)
	}
	_, K := ts.Y.Dims()

	results := make([][]*GrangerCausalityResult, K)
	for i := range results {
		results[i] = make([]*GrangerCausalityResult, K)
	}
	for i := 0; i < K; i++ {
		for j := 0; j < K; j++ {
			if i == j {
				continue
			}
			result, err := rf.GrangerCausality(ts, i, j)
			if err != nil {
				return nil, err
			}
			results[i][j] = result
		}
	}
	return results, nil
}

// buildLagDesign builds the deterministic + lagged-variable design matrix
// used by both the unrestricted and restricted Granger regressions,
// omitting variable excludeVar's lags when excludeVar >= 0.
func buildLagDesign(ts *TimeSeries, p, treg, detCols int, hasConst, hasTrend bool, excludeVar int) *mat.Dense {
	_, K := ts.Y.Dims()
	width := K
	if excludeVar >= 0 {
		width = K - 1
	}
	m := detCols + p*width
	X := mat.NewDense(treg, m, nil)

	for t := 0; t < treg; t++ {
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
				if k == excludeVar {
					continue
				}
				X.Set(t, col, ts.Y.At(srcRow, k))
				col++
			}
		}
	}
	return X
}

func sumSquares(x []float64) float64 {
	total := 0.0
	for _, v := range x {
		total += v * v
	}
	return total
}
