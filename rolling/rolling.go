// Package rolling implements fixed-width rolling-window statistics that
// update incrementally as new observations arrive.
package rolling

import (
	"math"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/ols"
	"github.com/halvorsen-quant/adfstat/trend"
)

const op = "rolling"

// Mean is a rolling arithmetic mean over a fixed-width window, updated in
// O(1) per observation by tracking the running sum.
type Mean struct {
	window []float64 // oldest first, fixed length
	sum    float64
	val    float64
}

// NewMean seeds a rolling mean from an initial window of observations.
func NewMean(window []float64) (*Mean, error) {
	if len(window) == 0 {
		return nil, adferrors.New(adferrors.InvalidArgument, op+".NewMean", "window", "empty")
	}
	sum := 0.0
	for _, v := range window {
		sum += v
	}
	w := append([]float64(nil), window...)
	return &Mean{window: w, sum: sum, val: sum / float64(len(w))}, nil
}

// Update slides the window forward by one observation and returns the new mean.
func (m *Mean) Update(next float64) float64 {
	m.sum -= m.window[0]
	m.window = append(m.window[1:], next)
	m.sum += next
	m.val = m.sum / float64(len(m.window))
	return m.val
}

// Current returns the most recently computed mean.
func (m *Mean) Current() float64 { return m.val }

// HalfLife is a rolling estimate of an AR(1) mean-reversion half-life,
// re-estimated via OLS on every update. It is deliberately not O(1); there
// must be a more efficient way than refitting OLS on every observation.
type HalfLife struct {
	window []float64
	val    float64
}

// NewHalfLife seeds a rolling half-life estimator from an initial window.
func NewHalfLife(window []float64) (*HalfLife, error) {
	if len(window) < 3 {
		return nil, adferrors.New(adferrors.InvalidArgument, op+".NewHalfLife", "window", len(window))
	}
	w := append([]float64(nil), window...)
	h, err := AROneHalfLife(w)
	if err != nil {
		return nil, err
	}
	return &HalfLife{window: w, val: h}, nil
}

// Update slides the window forward by one observation, re-fits the AR(1)
// model, and returns the new half-life estimate.
func (h *HalfLife) Update(next float64) (float64, error) {
	h.window = append(h.window[1:], next)
	val, err := AROneHalfLife(h.window)
	if err != nil {
		return 0, err
	}
	h.val = val
	return h.val, nil
}

// Current returns the most recently computed half-life.
func (h *HalfLife) Current() float64 { return h.val }

// AROneHalfLife fits y_t = phi * y_{t-1} + c on the demeaned series exog and
// converts the AR(1) coefficient phi into a mean-reversion half-life,
// -ln(2)/ln(|phi|).
func AROneHalfLife(exog []float64) (float64, error) {
	n := len(exog)
	if n < 3 {
		return 0, adferrors.New(adferrors.InvalidArgument, op+".AROneHalfLife", "len(exog)", n)
	}

	mean := 0.0
	for _, v := range exog {
		mean += v
	}
	mean /= float64(n)

	x := make([]float64, n)
	for i, v := range exog {
		x[i] = v - mean
	}

	xLag := x[:n-1]
	xCur := x[1:]

	design, err := trend.FromSeries(xLag, "c", true)
	if err != nil {
		return 0, err
	}

	fit, err := ols.Fit(design, xCur)
	if err != nil {
		return 0, err
	}
	phi := fit.Params[1]

	h := -(math.Log(2.0) / math.Log(math.Abs(phi)))
	return h, nil
}
