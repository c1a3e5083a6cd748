// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// sparseConfig mirrors the real-valued configuration used for circuit
// matrices; the solver uses 1-based indices for both A and the vectors.
func sparseConfig() *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}
}

// SparseSolve solves the assembled system with a sparse LU factorization and
// returns x in float64 (0-based).
//
// Errors:
//   - ErrSingular wrapped when factorization or the triangular solves fail.
func SparseSolve(a Assembled) ([]float64, error) {
	if err := validate(a); err != nil {
		return nil, referenceErrorf(opSparse, err)
	}

	m, err := sparse.Create(int64(a.N), sparseConfig())
	if err != nil {
		return nil, referenceErrorf(opSparse, err)
	}
	defer m.Destroy()

	m.Clear()
	for _, e := range a.Entries {
		m.GetElement(int64(e.I+1), int64(e.J+1)).Real += e.V
	}

	rhs := make([]float64, a.N+1) // index 0 unused
	copy(rhs[1:], a.RHS)

	if err = m.Factor(); err != nil {
		return nil, referenceErrorf(opSparse, fmt.Errorf("%w: factor: %w", ErrSingular, err))
	}
	sol, err := m.Solve(rhs)
	if err != nil {
		return nil, referenceErrorf(opSparse, fmt.Errorf("%w: solve: %w", ErrSingular, err))
	}
	if len(sol) < a.N+1 {
		return nil, referenceErrorf(opSparse, fmt.Errorf("solution has %d entries: %w", len(sol), ErrDimensionMismatch))
	}

	return append([]float64(nil), sol[1:a.N+1]...), nil
}
