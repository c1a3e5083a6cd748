// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Float64 is the fixed-precision backend (IEEE-754 binary64).
//
// Pivot policy: the solver tests pivots with IsZero, i.e. exact == 0, for this
// backend as well. No epsilon is introduced; a tiny but non-zero pivot is
// accepted and its effect shows up in the residual norm instead.
type Float64 float64

// Add returns x + y.
func (x Float64) Add(y Float64) Float64 { return x + y }

// Sub returns x - y.
func (x Float64) Sub(y Float64) Float64 { return x - y }

// Mul returns x * y.
func (x Float64) Mul(y Float64) Float64 { return x * y }

// Quo returns x / y (±Inf or NaN when y == 0, per IEEE-754).
func (x Float64) Quo(y Float64) Float64 { return x / y }

// Neg returns -x.
func (x Float64) Neg() Float64 { return -x }

// Abs returns |x|.
func (x Float64) Abs() Float64 { return Float64(math.Abs(float64(x))) }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Float64) Cmp(y Float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// IsZero reports x == 0 (both signed zeros).
func (x Float64) IsZero() bool { return x == 0 }

// Float64 returns x unchanged.
func (x Float64) Float64() float64 { return float64(x) }

// String formats x with the shortest representation that round-trips.
func (x Float64) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

// Float64Field is the Field for Float64. The zero value is ready to use.
type Float64Field struct{}

// Name returns NameFloat64.
func (Float64Field) Name() string { return NameFloat64 }

// Zero returns 0.
func (Float64Field) Zero() Float64 { return 0 }

// One returns 1.
func (Float64Field) One() Float64 { return 1 }

// Parse parses s with strconv.ParseFloat. NaN, ±Inf and out-of-range
// magnitudes are rejected.
func (Float64Field) Parse(s string) (Float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, parseErrorf(NameFloat64, s, ErrParse)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, parseErrorf(NameFloat64, s, ErrNonFinite)
	}

	return Float64(v), nil
}
