// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for nil/length/index guards.
//   - Return plain sentinels wrapped with the validator tag so call sites can
//     wrap again with their operation tag.

package vector

import (
	"fmt"

	"github.com/katalvlaran/tridiag/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures v is non-nil.
func ValidateNotNil[T numeric.Number[T]](v *Vector[T]) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilVector)
	}

	return nil
}

// ValidateLen ensures v is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateLen[T numeric.Number[T]](v *Vector[T], n int) error {
	if v == nil {
		return validatorErrorf("ValidateLen", ErrNilVector)
	}
	if len(v.data) != n {
		return validatorErrorf("ValidateLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen – Composite: NotNil(a) → NotNil(b) → equal lengths.
func ValidateSameLen[T numeric.Number[T]](a, b *Vector[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameLen", err)
	}
	if len(a.data) != len(b.data) {
		return validatorErrorf("ValidateSameLen", ErrDimensionMismatch)
	}

	return nil
}

// validateIndex assumes v is non-nil.
func validateIndex[T numeric.Number[T]](v *Vector[T], i int) error {
	if i < 0 || i >= len(v.data) {
		return ErrOutOfRange
	}

	return nil
}
