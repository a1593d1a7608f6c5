// Package linalg is the thin dense linear-algebra façade the rest of this
// module builds on: matrix multiply and transpose come straight from
// gonum.org/v1/gonum/mat, and this package adds exactly the two operations
// the OLS solver needs on top of it — a condition-number-aware inverse and
// a Moore-Penrose pseudoinverse, both driven by one SVD factorization.
package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConditionThreshold is the 2-norm condition number (κ = σ_max/σ_min)
// above which a matrix is treated as near-singular and inverted via its
// pseudoinverse instead of a direct inverse.
const ConditionThreshold = 1e12

// SymmetricInverse inverts the square matrix a, switching automatically from
// a direct inverse to the Moore-Penrose pseudoinverse when a's 2-norm
// condition number exceeds ConditionThreshold. It returns the inverse, the
// condition number that drove the choice, and an error only when a is not
// square or the SVD factorization itself fails to converge.
func SymmetricInverse(a mat.Matrix) (inv *mat.Dense, cond float64, err error) {
	r, c := a.Dims()
	if r != c {
		return nil, 0, errNotSquare
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, 0, errSVDFailed
	}
	cond = svd.Cond()

	if cond > ConditionThreshold {
		return PseudoInverse(&svd), cond, nil
	}

	inv = mat.NewDense(r, c, nil)
	if invErr := inv.Inverse(a); invErr != nil {
		// Direct inversion can still fail on matrices the condition
		// number alone doesn't flag (e.g. exact row dependence); fall
		// back to the pseudoinverse rather than surfacing a spurious
		// failure for an input the caller had no way to predict.
		return PseudoInverse(&svd), cond, nil
	}
	return inv, cond, nil
}

// PseudoInverse reconstructs the Moore-Penrose pseudoinverse V * Σ⁺ * Uᵀ from
// an already-factorized SVD, treating singular values at or below a
// dimension-scaled epsilon as zero.
func PseudoInverse(svd *mat.SVD) *mat.Dense {
	s := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	tol := pinvTolerance(s)
	sInv := make([]float64, len(s))
	for i, sv := range s {
		if sv > tol {
			sInv[i] = 1 / sv
		}
	}

	sigmaInv := mat.NewDiagDense(len(sInv), sInv)

	var vs mat.Dense
	vs.Mul(&v, sigmaInv)

	pinv := mat.NewDense(v.RawMatrix().Rows, u.RawMatrix().Rows, nil)
	pinv.Mul(&vs, u.T())
	return pinv
}

// pinvTolerance mirrors the convention used by numpy.linalg.pinv: singular
// values no larger than max(dims)*eps*σ_max are treated as numerically zero.
func pinvTolerance(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	sMax := s[0]
	for _, v := range s {
		if v > sMax {
			sMax = v
		}
	}
	eps := math.Nextafter(1, 2) - 1
	return float64(len(s)) * eps * sMax
}

type linalgError string

func (e linalgError) Error() string { return string(e) }

const (
	errNotSquare linalgError = "linalg: matrix must be square"
	errSVDFailed linalgError = "linalg: svd factorization did not converge"
)
