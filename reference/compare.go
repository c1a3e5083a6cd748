// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/vector"
)

// Method selects a reference solver.
type Method string

const (
	// Dense is gonum's dense LU.
	Dense Method = "dense"
	// Sparse is the sparse LU factorization.
	Sparse Method = "sparse"
)

// Solve dispatches to DenseSolve or SparseSolve.
func (m Method) Solve(a Assembled) ([]float64, error) {
	switch m {
	case Dense:
		return DenseSolve(a)
	case Sparse:
		return SparseSolve(a)
	default:
		return nil, fmt.Errorf("reference: unknown method %q", string(m))
	}
}

// MaxDeviation returns max_i |x[i] - ref[i]| with x projected to float64.
//
// Errors:
//   - ErrDimensionMismatch when the lengths differ.
//   - ErrNaNInf when a value of x does not fit in a finite float64, when ref
//     holds NaN or ±Inf, or when the deviation itself overflows.
func MaxDeviation[T numeric.Number[T]](x *vector.Vector[T], ref []float64) (float64, error) {
	vals := x.Values()
	if len(vals) != len(ref) {
		return 0, referenceErrorf(opCompare, ErrDimensionMismatch)
	}
	dev := 0.0
	for i, v := range vals {
		f := v.Float64()
		if !finite(f) || !finite(ref[i]) {
			return 0, referenceErrorf(opCompare, fmt.Errorf("x[%d]=%s ref=%g: %w", i, v, ref[i], ErrNaNInf))
		}
		dev = math.Max(dev, math.Abs(f-ref[i]))
	}
	if !finite(dev) {
		return 0, referenceErrorf(opCompare, fmt.Errorf("deviation: %w", ErrNaNInf))
	}

	return dev, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
