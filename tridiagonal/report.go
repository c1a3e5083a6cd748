// SPDX-License-Identifier: MIT

package tridiagonal

import (
	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/vector"
)

// Report gathers the diagnostics of one verification run.
//
// T1 and T2 are always filled in. Solution, Residual and Norm are set only
// when the sweep succeeded.
type Report[T numeric.Number[T]] struct {
	T1       bool
	T2       bool
	Solution *vector.Vector[T]
	Residual *vector.Vector[T]
	Norm     T
}

// Verify evaluates both theorem checks, solves the system and measures the
// residual of the solution.
//
// The checks run first and never gate the sweep. On ErrUnsolvable the report
// still carries T1/T2 and is returned together with the error.
//
// Errors:
//   - ErrNilSystem / ErrInvalidSize for a nil or zero-value System, with an
//     empty report;
//   - ErrUnsolvable from Solve.
func (s *System[T]) Verify() (Report[T], error) {
	if err := validateSize(s); err != nil {
		return Report[T]{}, tridiagonalErrorf(opVerify, err)
	}
	rep := Report[T]{
		T1: s.CheckT1(),
		T2: s.CheckT2(),
	}

	x, err := s.Solve()
	if err != nil {
		return rep, err
	}
	r, norm, err := s.Residual(x)
	if err != nil {
		return rep, err
	}
	rep.Solution, rep.Residual, rep.Norm = x, r, norm

	return rep, nil
}
