// SPDX-License-Identifier: MIT

// Package vector - fixed-length vectors over a numeric field & safe accessors.
//
// Purpose:
//   - Provide an ordered, fixed-length sequence of field elements whose length
//     never changes after construction.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep every binary operation allocation-explicit: results are fresh vectors,
//     operands are never mutated and never aliased.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone: O(n); At/Set/Len: O(1); Add/Sub/Dot/Norm: O(n).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tridiag/numeric"
)

// ---------- error context tags ----------

const (
	opAt  = "At"
	opSet = "Set"
	opAdd = "Add"
	opSub = "Sub"
	opDot = "Dot"
	opNew = "New"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// vectorErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("Vector.%s: %w", tag, err)
}

// Vector is a fixed-length vector of field elements.
// The zero element of T is used for unset entries.
type Vector[T numeric.Number[T]] struct {
	data []T // len(data) is the immutable length
}

// New allocates a vector of n zero elements. n == 0 is allowed.
//
// Errors:
//   - ErrBadShape when n < 0.
func New[T numeric.Number[T]](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(opNew, ErrBadShape)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// FromSlice returns a vector holding a copy of values.
// Later changes to values do not affect the vector.
func FromSlice[T numeric.Number[T]](values []T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{data: data}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns the i-th element.
//
// Errors:
//   - ErrNilVector, ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if err := ValidateNotNil(v); err != nil {
		return zero, vectorErrorf(opAt, err)
	}
	if err := validateIndex(v, i); err != nil {
		return zero, fmt.Errorf("Vector.%s(%d): %w", opAt, i, err)
	}

	return v.data[i], nil
}

// Set stores x at index i. The length never changes.
//
// Errors:
//   - ErrNilVector, ErrOutOfRange.
func (v *Vector[T]) Set(i int, x T) error {
	if err := ValidateNotNil(v); err != nil {
		return vectorErrorf(opSet, err)
	}
	if err := validateIndex(v, i); err != nil {
		return fmt.Errorf("Vector.%s(%d): %w", opSet, i, err)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements in index order.
func (v *Vector[T]) Values() []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}

	return FromSlice(v.data)
}

// addSub computes out[i] = a[i] ± b[i] into a fresh vector.
// Internal helper for Add/Sub to share validation and allocation.
func addSub[T numeric.Number[T]](a, b *Vector[T], subtract bool, opTag string) (*Vector[T], error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opTag, err)
	}

	out := make([]T, len(a.data))
	for i := range a.data { // deterministic 0..n-1
		if subtract {
			out[i] = a.data[i].Sub(b.data[i])
		} else {
			out[i] = a.data[i].Add(b.data[i])
		}
	}

	return &Vector[T]{data: out}, nil
}

// Add returns the element-wise sum v + w as a new vector.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) { return addSub(v, w, false, opAdd) }

// Sub returns the element-wise difference v - w as a new vector.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) { return addSub(v, w, true, opSub) }

// Dot returns Σ v[i]*w[i]; the empty sum is zero.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	var sum T
	if err := ValidateSameLen(v, w); err != nil {
		return sum, vectorErrorf(opDot, err)
	}
	for i := range v.data {
		sum = sum.Add(v.data[i].Mul(w.data[i]))
	}

	return sum, nil
}

// Norm returns the max-absolute-value (infinity) norm; zero for an empty or nil vector.
func (v *Vector[T]) Norm() T {
	var m T
	if v == nil {
		return m
	}
	for _, x := range v.data {
		m = numeric.Max(m, x.Abs())
	}

	return m
}

// String renders the vector as "[x0, x1, ...]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.Values() {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(x.String())
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
