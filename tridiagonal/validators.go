// SPDX-License-Identifier: MIT
// Package: tridiagonal
//
// Purpose:
//   - Keep the size invariant and receiver guards in one place so every
//     System method agrees on what "last" and "last-1" mean.

package tridiagonal

import (
	"fmt"

	"github.com/katalvlaran/tridiag/numeric"
	"github.com/katalvlaran/tridiag/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSize asserts n == len(rows) + BoundaryRows.
// Complexity: O(1).
func validateSize[T numeric.Number[T]](s *System[T]) error {
	if s == nil {
		return validatorErrorf("validateSize", ErrNilSystem)
	}
	if s.n != len(s.rows)+BoundaryRows {
		return validatorErrorf("validateSize", fmt.Errorf("n=%d rows=%d: %w", s.n, len(s.rows), ErrInvalidSize))
	}

	return nil
}

// ValidateCandidate ensures v is a non-nil vector of length s.N().
//
// Errors:
//   - ErrNilSystem, vector.ErrNilVector, ErrDimensionMismatch.
func ValidateCandidate[T numeric.Number[T]](s *System[T], v *vector.Vector[T]) error {
	if err := validateSize(s); err != nil {
		return validatorErrorf("ValidateCandidate", err)
	}
	if err := vector.ValidateLen(v, s.n); err != nil {
		return validatorErrorf("ValidateCandidate", err)
	}

	return nil
}
