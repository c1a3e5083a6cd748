// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DenseSolve solves the assembled system with gonum's dense LU (partial
// pivoting) and returns x in float64.
//
// Errors:
//   - ErrSingular wrapped when gonum reports an exactly singular or
//     numerically ill-conditioned matrix.
//
// Complexity:
//   - Time O(n³), Space O(n²). Intended for cross-checks on small systems.
func DenseSolve(a Assembled) ([]float64, error) {
	if err := validate(a); err != nil {
		return nil, referenceErrorf(opDense, err)
	}

	A := mat.NewDense(a.N, a.N, nil)
	for _, e := range a.Entries {
		A.Set(e.I, e.J, A.At(e.I, e.J)+e.V)
	}
	b := mat.NewVecDense(a.N, append([]float64(nil), a.RHS...))

	var x mat.VecDense
	if err := x.SolveVec(A, b); err != nil {
		return nil, referenceErrorf(opDense, fmt.Errorf("%w: %w", ErrSingular, err))
	}

	return append([]float64(nil), x.RawVector().Data...), nil
}
