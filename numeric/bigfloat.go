// SPDX-License-Identifier: MIT

package numeric

import (
	"math/big"
	"strings"
)

// DefaultBigFloatPrecision is the mantissa size in bits used when a field is
// built with precision 0 and for zero-value BigFloat operands.
const DefaultBigFloatPrecision uint = 1024

// BigFloat is a binary arbitrary-precision backend on top of math/big.Float.
//
// The zero value is 0 at DefaultBigFloatPrecision. Results carry the larger
// precision of the two operands and round to nearest even.
//
// Quo(0, 0) panics with big.ErrNaN, as math/big does; callers must test the
// divisor with IsZero first.
type BigFloat struct {
	v *big.Float
}

// NewBigFloat wraps a copy of f.
func NewBigFloat(f *big.Float) BigFloat {
	if f == nil {
		return BigFloat{}
	}

	return BigFloat{v: new(big.Float).Copy(f)}
}

// Big returns a copy of the underlying value.
func (x BigFloat) Big() *big.Float { return new(big.Float).Copy(x.val()) }

// Prec returns the mantissa precision in bits.
func (x BigFloat) Prec() uint { return x.val().Prec() }

func (x BigFloat) val() *big.Float {
	if x.v == nil {
		return new(big.Float).SetPrec(DefaultBigFloatPrecision)
	}

	return x.v
}

// out allocates the result holder for a binary operation on x and y.
func (x BigFloat) out(y BigFloat) *big.Float {
	p := x.val().Prec()
	if q := y.val().Prec(); q > p {
		p = q
	}
	if p == 0 {
		p = DefaultBigFloatPrecision
	}

	return new(big.Float).SetPrec(p).SetMode(big.ToNearestEven)
}

// Add returns x + y.
func (x BigFloat) Add(y BigFloat) BigFloat { return BigFloat{x.out(y).Add(x.val(), y.val())} }

// Sub returns x - y.
func (x BigFloat) Sub(y BigFloat) BigFloat { return BigFloat{x.out(y).Sub(x.val(), y.val())} }

// Mul returns x * y.
func (x BigFloat) Mul(y BigFloat) BigFloat { return BigFloat{x.out(y).Mul(x.val(), y.val())} }

// Quo returns x / y.
func (x BigFloat) Quo(y BigFloat) BigFloat { return BigFloat{x.out(y).Quo(x.val(), y.val())} }

// Neg returns -x.
func (x BigFloat) Neg() BigFloat { return BigFloat{x.out(x).Neg(x.val())} }

// Abs returns |x|.
func (x BigFloat) Abs() BigFloat { return BigFloat{x.out(x).Abs(x.val())} }

// Cmp compares x and y and returns -1, 0 or +1.
func (x BigFloat) Cmp(y BigFloat) int { return x.val().Cmp(y.val()) }

// IsZero reports whether x is exactly ±0.
func (x BigFloat) IsZero() bool { return x.val().Sign() == 0 }

// Float64 returns the float64 nearest to x.
func (x BigFloat) Float64() float64 {
	f, _ := x.val().Float64()

	return f
}

// String formats x with the shortest decimal that round-trips at its precision.
func (x BigFloat) String() string { return x.val().Text('g', -1) }

// BigFloatField is the Field for BigFloat at a fixed precision.
type BigFloatField struct {
	prec uint
}

// NewBigFloatField returns a field with prec mantissa bits.
// prec == 0 selects DefaultBigFloatPrecision. Precision above big.MaxPrec
// is a programmer error and panics.
func NewBigFloatField(prec uint) BigFloatField {
	if prec == 0 {
		prec = DefaultBigFloatPrecision
	}
	if prec > big.MaxPrec {
		panic("numeric: NewBigFloatField: precision exceeds big.MaxPrec")
	}

	return BigFloatField{prec: prec}
}

// Prec returns the field precision in bits.
func (f BigFloatField) Prec() uint {
	if f.prec == 0 {
		return DefaultBigFloatPrecision
	}

	return f.prec
}

// Name returns NameBigFloat.
func (BigFloatField) Name() string { return NameBigFloat }

// Zero returns 0 at the field precision.
func (f BigFloatField) Zero() BigFloat {
	return BigFloat{new(big.Float).SetPrec(f.Prec())}
}

// One returns 1 at the field precision.
func (f BigFloatField) One() BigFloat {
	return BigFloat{new(big.Float).SetPrec(f.Prec()).SetInt64(1)}
}

// Parse parses a decimal (or 0x/0b/0o prefixed) token at the field precision.
// ±Inf is rejected with ErrNonFinite.
func (f BigFloatField) Parse(s string) (BigFloat, error) {
	s = strings.TrimSpace(s)
	v, _, err := big.ParseFloat(s, 0, f.Prec(), big.ToNearestEven)
	if err != nil {
		return BigFloat{}, parseErrorf(NameBigFloat, s, ErrParse)
	}
	if v.IsInf() {
		return BigFloat{}, parseErrorf(NameBigFloat, s, ErrNonFinite)
	}

	return BigFloat{v}, nil
}
