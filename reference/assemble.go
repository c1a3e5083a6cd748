// SPDX-License-Identifier: MIT

package reference

import (
	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/tridiagonal"
)

// Triplet is one non-zero matrix entry in coordinate (COO) form, 0-based.
type Triplet struct {
	I, J int
	V    float64
}

// Assembled is the float64 projection of a System: A in COO form and the rhs.
type Assembled struct {
	N       int
	Entries []Triplet
	RHS     []float64
}

// Assemble projects s to float64 and lays out its matrix explicitly:
//
//	row 0:    [ 1, -kappa1, 0 ... ]                   rhs mu1
//	row k:    [ ... a, -b, c ... ] at k-1, k, k+1     rhs d
//	row last: [ ... -kappa2, 1 ]                      rhs mu2
//
// Zero coefficients are skipped. Entries are emitted row by row, left to right.
// Complexity: O(n).
func Assemble[T numeric.Number[T]](s *tridiagonal.System[T]) Assembled {
	n := s.N()
	bound, right := s.Boundary(), s.RightBound()

	out := Assembled{
		N:       n,
		Entries: make([]Triplet, 0, 3*n),
		RHS:     make([]float64, n),
	}
	add := func(i, j int, v float64) {
		if v != 0 {
			out.Entries = append(out.Entries, Triplet{I: i, J: j, V: v})
		}
	}

	add(0, 0, 1)
	add(0, 1, -bound.Kappa1.Float64())
	out.RHS[0] = right.Mu1.Float64()

	for i, row := range s.Rows() {
		k := i + 1
		add(k, k-1, row.A.Float64())
		add(k, k, -row.B.Float64())
		add(k, k+1, row.C.Float64())
		out.RHS[k] = row.D.Float64()
	}

	last := n - 1
	add(last, last-1, -bound.Kappa2.Float64())
	add(last, last, 1)
	out.RHS[last] = right.Mu2.Float64()

	return out
}
