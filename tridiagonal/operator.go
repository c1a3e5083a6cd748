// SPDX-License-Identifier: MIT

package tridiagonal

import (
	"github.com/katalvlaran/tridiag/vector"
)

// Apply substitutes v into every equation of the system, i.e. returns A·v:
//
//	r[0]    = v[0] - kappa1*v[1]
//	r[i]    = a*v[i-1] - b*v[i] + c*v[i+1]     for each interior row
//	r[last] = v[last] - kappa2*v[last-1]
//
// Errors:
//   - ErrDimensionMismatch when v.Len() != N(); vector.ErrNilVector for nil v.
//
// Complexity:
//   - Time O(n), Space O(n) for the result.
func (s *System[T]) Apply(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateCandidate(s, v); err != nil {
		return nil, tridiagonalErrorf(opApply, err)
	}

	x := v.Values()
	last := s.n - 1
	out := make([]T, s.n)
	out[0] = x[0].Sub(s.bound.Kappa1.Mul(x[1]))
	for i, row := range s.rows {
		k := i + 1 // grid index of the row
		out[k] = row.A.Mul(x[k-1]).Sub(row.B.Mul(x[k])).Add(row.C.Mul(x[k+1]))
	}
	out[last] = x[last].Sub(s.bound.Kappa2.Mul(x[last-1]))

	return vector.FromSlice(out), nil
}

// Right assembles the right-hand side (mu1, d_1, ..., d_m, mu2) as a new vector.
// It returns nil for a nil or zero-value System.
func (s *System[T]) Right() *vector.Vector[T] {
	if validateSize(s) != nil {
		return nil
	}
	out := make([]T, s.n)
	out[0] = s.right.Mu1
	for i, row := range s.rows {
		out[i+1] = row.D
	}
	out[s.n-1] = s.right.Mu2

	return vector.FromSlice(out)
}

// Residual returns r = Apply(x) - Right() and its max-absolute-value norm.
// The norm is the empirical accuracy of x, independent of the sweep's own
// bookkeeping.
//
// Errors:
//   - same as Apply.
func (s *System[T]) Residual(x *vector.Vector[T]) (*vector.Vector[T], T, error) {
	var zero T
	operated, err := s.Apply(x)
	if err != nil {
		return nil, zero, tridiagonalErrorf(opResidual, err)
	}
	r, err := operated.Sub(s.Right())
	if err != nil {
		return nil, zero, tridiagonalErrorf(opResidual, err)
	}

	return r, r.Norm(), nil
}
