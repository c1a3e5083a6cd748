// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DefaultDecimalDigits is the number of significant decimal digits used when a
// field is built with 0 digits and for zero-value Decimal operands.
// 310 digits cover the 1024-bit binary mantissa of DefaultBigFloatPrecision.
const DefaultDecimalDigits uint32 = 310

// defaultDecimalContext backs zero-value Decimal operands.
var defaultDecimalContext = newDecimalContext(DefaultDecimalDigits)

// newDecimalContext returns a context with no traps: exceptional results
// (Inf, NaN) are produced as values instead of errors.
func newDecimalContext(digits uint32) *apd.Context {
	ctx := apd.BaseContext.WithPrecision(digits)
	ctx.Traps = 0

	return ctx
}

// Decimal is an arbitrary-precision decimal backend on top of apd.Decimal.
//
// Parsed values keep every digit of their literal; arithmetic results are
// rounded to the context precision (the larger of the two operands').
// The zero value is 0 with DefaultDecimalDigits.
type Decimal struct {
	v   *apd.Decimal
	ctx *apd.Context
}

func (x Decimal) val() *apd.Decimal {
	if x.v == nil {
		return new(apd.Decimal)
	}

	return x.v
}

func (x Decimal) context() *apd.Context {
	if x.ctx == nil {
		return defaultDecimalContext
	}

	return x.ctx
}

// pick returns the context with the larger precision.
func (x Decimal) pick(y Decimal) *apd.Context {
	cx, cy := x.context(), y.context()
	if cy.Precision > cx.Precision {
		return cy
	}

	return cx
}

type decimalOp func(d, x, y *apd.Decimal) (apd.Condition, error)

// apply runs a context operation. With traps disabled apd reports no errors
// for arithmetic conditions, so an error here is a broken invariant.
func (x Decimal) apply(y Decimal, op func(*apd.Context) decimalOp) Decimal {
	ctx := x.pick(y)
	d := new(apd.Decimal)
	if _, err := op(ctx)(d, x.val(), y.val()); err != nil {
		panic("numeric: decimal arithmetic: " + err.Error())
	}

	return Decimal{v: d, ctx: ctx}
}

// Add returns x + y.
func (x Decimal) Add(y Decimal) Decimal {
	return x.apply(y, func(c *apd.Context) decimalOp { return c.Add })
}

// Sub returns x - y.
func (x Decimal) Sub(y Decimal) Decimal {
	return x.apply(y, func(c *apd.Context) decimalOp { return c.Sub })
}

// Mul returns x * y.
func (x Decimal) Mul(y Decimal) Decimal {
	return x.apply(y, func(c *apd.Context) decimalOp { return c.Mul })
}

// Quo returns x / y rounded to the context precision (±Inf or NaN when y is 0).
func (x Decimal) Quo(y Decimal) Decimal {
	return x.apply(y, func(c *apd.Context) decimalOp { return c.Quo })
}

// Neg returns -x.
func (x Decimal) Neg() Decimal {
	return Decimal{v: new(apd.Decimal).Neg(x.val()), ctx: x.context()}
}

// Abs returns |x|.
func (x Decimal) Abs() Decimal {
	return Decimal{v: new(apd.Decimal).Abs(x.val()), ctx: x.context()}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Decimal) Cmp(y Decimal) int { return x.val().Cmp(y.val()) }

// IsZero reports whether x is exactly zero (any exponent, either sign).
func (x Decimal) IsZero() bool { return x.val().IsZero() }

// Float64 returns the float64 nearest to x. Finite values beyond the float64
// range map to ±Inf (or a signed zero below it); NaN stays NaN.
func (x Decimal) Float64() float64 {
	d := x.val()
	f, err := d.Float64()
	switch {
	case err == nil, math.IsInf(f, 0):
		return f
	case errors.Is(err, strconv.ErrRange):
		if d.NumDigits()+int64(d.Exponent) > 0 {
			return math.Inf(d.Sign())
		}
		return math.Copysign(0, float64(d.Sign()))
	default:
		return math.NaN()
	}
}

// String formats x in apd's to-scientific-string form.
func (x Decimal) String() string { return x.val().String() }

// DecimalField is the Field for Decimal at a fixed number of digits.
type DecimalField struct {
	ctx *apd.Context
}

// NewDecimalField returns a field rounding arithmetic to digits significant
// digits. digits == 0 selects DefaultDecimalDigits.
func NewDecimalField(digits uint32) DecimalField {
	if digits == 0 {
		return DecimalField{ctx: defaultDecimalContext}
	}

	return DecimalField{ctx: newDecimalContext(digits)}
}

func (f DecimalField) context() *apd.Context {
	if f.ctx == nil {
		return defaultDecimalContext
	}

	return f.ctx
}

// Digits returns the field precision in significant digits.
func (f DecimalField) Digits() uint32 { return f.context().Precision }

// Name returns NameDecimal.
func (DecimalField) Name() string { return NameDecimal }

// Zero returns 0.
func (f DecimalField) Zero() Decimal {
	return Decimal{v: new(apd.Decimal), ctx: f.context()}
}

// One returns 1.
func (f DecimalField) One() Decimal {
	return Decimal{v: apd.New(1, 0), ctx: f.context()}
}

// Parse parses s exactly (no rounding); NaN and ±Inf are rejected.
func (f DecimalField) Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, parseErrorf(NameDecimal, s, ErrParse)
	}
	if d.Form != apd.Finite {
		return Decimal{}, parseErrorf(NameDecimal, s, ErrNonFinite)
	}

	return Decimal{v: d, ctx: f.context()}, nil
}
