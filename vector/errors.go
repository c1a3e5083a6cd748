// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag); tests MUST check them via errors.Is. No operation panics on a
// caller-triggered condition.

package vector

import "errors"

var (
	// ErrBadShape is returned when a requested length is negative.
	ErrBadShape = errors.New("vector: invalid length")

	// ErrOutOfRange indicates that an index is outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNilVector indicates that a nil *Vector was used as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)
