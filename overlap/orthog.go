package overlap

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"sparsegraph/molinput"
)

var ErrNotPositiveDefinite = errors.New("overlap: overlap matrix is not positive definite")

// Orthogonalise returns the coefficient matrix C whose columns are
// orthonormal combinations of the first n basis functions: Cᵀ S C = I.
//
// n <= 0 selects the first five functions (or all, if fewer); n > N selects
// all of them. Unknown methods fall back to canonical orthogonalisation.
func (s *System) Orthogonalise(n int, method molinput.Method) (*mat.Dense, error) {
	total := s.N()
	if total == 0 {
		return nil, ErrEmpty
	}
	switch {
	case n <= 0:
		n = min(5, total)
		s.log.Warn().Int("n", n).Msg("invalid number of functions to orthogonalise")
	case n > total:
		s.log.Warn().Int("requested", n).Int("available", total).Msg("too many basis functions to orthogonalise; using all")
		n = total
	}

	S, err := s.Overlap(n)
	if err != nil {
		return nil, err
	}

	switch method {
	case molinput.GramSchmidt:
		return gramSchmidt(S)
	case molinput.SymLowdin:
		return s.symLowdin(S)
	case molinput.Canonical:
	default:
		s.log.Warn().Int("method", int(method)).Msg("unknown orthogonalisation method; using canonical")
	}
	return s.canonical(S)
}

// gramSchmidt uses the Cholesky factor S = L Lᵀ: C = L⁻ᵀ.
func gramSchmidt(S *mat.SymDense) (*mat.Dense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(S); !ok {
		return nil, ErrNotPositiveDefinite
	}
	var L, inv mat.TriDense
	chol.LTo(&L)
	if err := inv.InverseTri(&L); err != nil {
		return nil, fmt.Errorf("overlap: invert cholesky factor: %w", err)
	}
	return mat.DenseCopyOf(inv.T()), nil
}

// canonical is C = W D^-1/2 for the eigen-decomposition S = W D Wᵀ.
func (s *System) canonical(S *mat.SymDense) (*mat.Dense, error) {
	W, d, err := s.invSqrtEigen(S, "canonical")
	if err != nil {
		return nil, err
	}
	var c mat.Dense
	c.Mul(W, d)
	return &c, nil
}

// symLowdin is C = S^-1/2 = W D^-1/2 Wᵀ.
func (s *System) symLowdin(S *mat.SymDense) (*mat.Dense, error) {
	W, d, err := s.invSqrtEigen(S, "symmetric lowdin")
	if err != nil {
		return nil, err
	}
	var wd, c mat.Dense
	wd.Mul(W, d)
	c.Mul(&wd, W.T())
	return &c, nil
}

// invSqrtEigen returns the eigenvectors of S and the diagonal of inverse
// square roots of its eigenvalues. Non-positive eigenvalues become zero.
func (s *System) invSqrtEigen(S *mat.SymDense, procedure string) (*mat.Dense, *mat.DiagDense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(S, true); !ok {
		return nil, nil, fmt.Errorf("overlap: %s: eigendecomposition failed", procedure)
	}
	vals := es.Values(nil)
	for i, v := range vals {
		if v > 0 {
			vals[i] = 1 / math.Sqrt(v)
			continue
		}
		s.log.Warn().Float64("eigenvalue", v).Str("procedure", procedure).Msg("non-positive eigenvalue; setting to zero")
		vals[i] = 0
	}
	var W mat.Dense
	es.VectorsTo(&W)
	return &W, mat.NewDiagDense(len(vals), vals), nil
}
