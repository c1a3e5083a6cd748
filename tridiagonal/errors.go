// SPDX-License-Identifier: MIT
// Package tridiagonal: sentinel error set.
// Every exported operation returns these sentinels, wrapped with an operation
// tag via tridiagonalErrorf; callers match with errors.Is. Theorem checks never
// return errors.

package tridiagonal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tridiag/vector"
)

var (
	// ErrLoad is returned when a fixture cannot be read: the resource is
	// unavailable, a line is malformed or a token fails to parse. The
	// underlying cause (os.ErrNotExist, numeric.ErrParse, ...) stays matchable.
	ErrLoad = errors.New("tridiagonal: cannot load system")

	// ErrUnsolvable is returned when a sweep denominator is exactly zero.
	// The sweep stops at the first occurrence; there is no pivoting fallback.
	ErrUnsolvable = errors.New("tridiagonal: zero pivot, system is unsolvable by sweep")

	// ErrInvalidSize signals a broken size invariant (n != len(rows) + 2).
	ErrInvalidSize = errors.New("tridiagonal: system size does not match rows + 2")

	// ErrNilField indicates that no numeric field was supplied.
	ErrNilField = errors.New("tridiagonal: nil numeric field")

	// ErrNilSystem indicates a nil *System receiver.
	ErrNilSystem = errors.New("tridiagonal: nil system")
)

// ErrDimensionMismatch is returned when a candidate vector length differs
// from the system size. It is the vector package sentinel, so errors.Is
// matches either name.
var ErrDimensionMismatch = vector.ErrDimensionMismatch

// Operation tags for uniform error wrapping.
const (
	opNew      = "New"
	opLoad     = "Load"
	opRead     = "Read"
	opSolve    = "Solve"
	opApply    = "Apply"
	opResidual = "Residual"
	opVerify   = "Verify"
)

// tridiagonalErrorf wraps err with an operation tag. Use only when err != nil.
func tridiagonalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
