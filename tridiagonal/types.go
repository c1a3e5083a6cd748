// SPDX-License-Identifier: MIT

package tridiagonal

import (
	"github.com/katalvlaran/tridiag/numeric"
)

// BoundaryRows is the number of boundary equations framing the interior rows.
// The size invariant is n == len(rows) + BoundaryRows everywhere.
const BoundaryRows = 2

// Row holds the coefficients of one interior equation
//
//	A*x(i-1) - B*x(i) + C*x(i+1) = D
//
// D is the fixture value; fixtures store the physical source term f already
// negated (D = -f).
type Row[T numeric.Number[T]] struct {
	A, B, C, D T
}

// Boundary holds the coupling coefficients of the two boundary equations
//
//	x0 - Kappa1*x1 = Mu1
//	xN - Kappa2*x(N-1) = Mu2
type Boundary[T numeric.Number[T]] struct {
	Kappa1, Kappa2 T
}

// RightBound holds the affine boundary constants Mu1 and Mu2.
type RightBound[T numeric.Number[T]] struct {
	Mu1, Mu2 T
}

// System is an immutable boundary-extended tridiagonal system of size N().
//
// A System never changes after New/Load returns it; Solve, CheckT1, CheckT2,
// Apply, Right and Residual are read-only and safe for concurrent use.
// Every vector handed out is freshly allocated.
type System[T numeric.Number[T]] struct {
	field numeric.Field[T]
	n     int
	bound Boundary[T]
	right RightBound[T]
	rows  []Row[T]
}

// New builds a System from its parts. rows is copied; an empty rows slice
// yields the 2×2 pure boundary system.
//
// Errors:
//   - ErrNilField when f is nil.
func New[T numeric.Number[T]](f numeric.Field[T], b Boundary[T], r RightBound[T], rows []Row[T]) (*System[T], error) {
	if f == nil {
		return nil, tridiagonalErrorf(opNew, ErrNilField)
	}
	own := make([]Row[T], len(rows))
	copy(own, rows)

	s := &System[T]{
		field: f,
		n:     len(own) + BoundaryRows,
		bound: b,
		right: r,
		rows:  own,
	}
	if err := validateSize(s); err != nil {
		return nil, tridiagonalErrorf(opNew, err)
	}

	return s, nil
}

// N returns the total number of unknowns, len(Rows()) + 2.
func (s *System[T]) N() int { return s.n }

// Field returns the numeric field the system was built with.
func (s *System[T]) Field() numeric.Field[T] { return s.field }

// Boundary returns the coupling coefficients (Kappa1, Kappa2).
func (s *System[T]) Boundary() Boundary[T] { return s.bound }

// RightBound returns the boundary constants (Mu1, Mu2).
func (s *System[T]) RightBound() RightBound[T] { return s.right }

// Rows returns a copy of the interior rows in index order.
func (s *System[T]) Rows() []Row[T] {
	out := make([]Row[T], len(s.rows))
	copy(out, s.rows)

	return out
}
