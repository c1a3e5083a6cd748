// SPDX-License-Identifier: MIT

package reference

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a reference factorization fails.
	ErrSingular = errors.New("reference: singular matrix")

	// ErrDimensionMismatch indicates an inconsistent assembly (rhs length,
	// entry coordinates) or solutions of different lengths.
	ErrDimensionMismatch = errors.New("reference: dimension mismatch")

	// ErrNaNInf indicates a coefficient or solution value that did not project
	// to a finite float64.
	ErrNaNInf = errors.New("reference: NaN or Inf encountered")
)

const (
	opDense   = "DenseSolve"
	opSparse  = "SparseSolve"
	opCompare = "MaxDeviation"
)

func referenceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validate checks rhs length, entry bounds and finiteness.
func validate(a Assembled) error {
	if a.N <= 0 || len(a.RHS) != a.N {
		return ErrDimensionMismatch
	}
	for _, e := range a.Entries {
		if e.I < 0 || e.I >= a.N || e.J < 0 || e.J >= a.N {
			return ErrDimensionMismatch
		}
		if !finite(e.V) {
			return ErrNaNInf
		}
	}
	for _, v := range a.RHS {
		if !finite(v) {
			return ErrNaNInf
		}
	}

	return nil
}
