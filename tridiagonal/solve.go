// SPDX-License-Identifier: MIT

package tridiagonal

import (
	"fmt"

	"github.com/katalvlaran/tridiag/vector"
)

// Solve runs the generalized Thomas sweep and returns x of length N().
//
// Algorithm:
//  1. Forward relation x(i) = alpha[i]*x(i+1) + beta[i], seeded from the left
//     boundary x0 - kappa1*x1 = mu1: alpha[0] = kappa1, beta[0] = mu1.
//  2. For every interior row (a, b, c, d) at index i:
//     denom      = b - alpha[i]*a        (exact-zero test, no tolerance)
//     alpha[i+1] = c / denom
//     beta[i+1]  = (beta[i]*a - d) / denom   (same denom value)
//  3. The right boundary xN - kappa2*x(N-1) = mu2 combined with the last
//     relation x(N-1) = alpha*xN + beta gives
//     xN = (mu2 + kappa2*beta) / (1 - kappa2*alpha).
//  4. Back-substitute x(i) = alpha[i]*x(i+1) + beta[i] for i = N-1 .. 0.
//
// With no interior rows step 3 uses alpha[0], beta[0] directly.
// alpha and beta are allocated per call and never shared.
//
// Errors:
//   - ErrUnsolvable when a denominator in step 2 or step 3 is exactly zero.
//   - ErrNilSystem / ErrInvalidSize for a broken receiver.
//
// Complexity:
//   - Time O(n), Space O(n).
func (s *System[T]) Solve() (*vector.Vector[T], error) {
	if err := validateSize(s); err != nil {
		return nil, tridiagonalErrorf(opSolve, err)
	}

	m := len(s.rows)
	alpha := make([]T, m+1)
	beta := make([]T, m+1)
	alpha[0] = s.bound.Kappa1
	beta[0] = s.right.Mu1

	var denom T
	for i, row := range s.rows {
		denom = row.B.Sub(alpha[i].Mul(row.A))
		if denom.IsZero() {
			return nil, tridiagonalErrorf(opSolve, fmt.Errorf("row %d: %w", i, ErrUnsolvable))
		}
		alpha[i+1] = row.C.Quo(denom)
		beta[i+1] = beta[i].Mul(row.A).Sub(row.D).Quo(denom)
	}

	kappa2 := s.bound.Kappa2
	denom = s.field.One().Sub(kappa2.Mul(alpha[m]))
	if denom.IsZero() {
		return nil, tridiagonalErrorf(opSolve, fmt.Errorf("right boundary: %w", ErrUnsolvable))
	}

	x := make([]T, s.n)
	x[s.n-1] = s.right.Mu2.Add(kappa2.Mul(beta[m])).Quo(denom)
	for i := m; i >= 0; i-- { // x(i) from x(i+1); filling descending keeps ascending order
		x[i] = alpha[i].Mul(x[i+1]).Add(beta[i])
	}

	return vector.FromSlice(x), nil
}
