// Package modelkind models "which regression model to fit" as a closed,
// tagged variant instead of an interface with a single implementer. Only
// OLS exists today; a switch keeps room for adding models later without
// introducing dynamic dispatch for what is, right now, one case.
package modelkind

import (
	"gonum.org/v1/gonum/mat"

	"github.com/halvorsen-quant/adfstat/adferrors"
	"github.com/halvorsen-quant/adfstat/ols"
)

// Kind identifies a regression model implementation.
type Kind int

const (
	// OLS is the only model kind this module supports.
	OLS Kind = iota
)

// Fit dispatches to the regression implementation named by k.
func Fit(k Kind, X mat.Matrix, y []float64) (ols.Result, error) {
	switch k {
	case OLS:
		return ols.Fit(X, y)
	default:
		return ols.Result{}, adferrors.New(adferrors.InvalidArgument, "modelkind.Fit", "kind", int(k))
	}
}
